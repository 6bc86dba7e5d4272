// file: bintree/constant/constant.go
package constant

import (
	"errors"
	"time"
)

// ----------------------------------------------------
// Standard errors
// ----------------------------------------------------

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrNoTerminal    = errors.New("input is not interactive")
)

// ----------------------------------------------------
// Tree limits
// ----------------------------------------------------

const (
	MinLevel        = 1
	MaxLevelLimit   = 4
	DefaultValueMin = 0
	DefaultValueMax = 100
	NodeWidth       = 4 // columns reserved per leaf slot
	CellWidth       = 3 // node values are centred in this many columns
	MaxRestarts     = 10000
)

// ----------------------------------------------------
// Traversal names
// ----------------------------------------------------

const (
	TraversalPreorder  = "preorder"
	TraversalInorder   = "inorder"
	TraversalPostorder = "postorder"
)

// ----------------------------------------------------
// Session defaults
// ----------------------------------------------------

const (
	DefaultDelay     = time.Second
	DefaultTheme     = "dark"
	HighlightColor   = "#f1c21b"
	StartPrompt      = "Press Enter to start the traversal..."
	ErrorBannerWidth = 50
)

// ----------------------------------------------------
// Config paths & keys
// ----------------------------------------------------

const (
	DefaultConfigFile = "bintree.json"
	EnvPrefix         = "TREE_"
	EnvConfigPath     = "TREE_CONFIG"

	ConfigLevel     = "level"
	ConfigNodes     = "nodes"
	ConfigTraversal = "traversal"
	ConfigSeed      = "seed"
	ConfigValueMin  = "value_min"
	ConfigValueMax  = "value_max"
	ConfigDelay     = "delay"
	ConfigTheme     = "theme"
	ConfigNoColor   = "no_color"
	ConfigLogLevel  = "log_level"
)
