package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Pack a source tree into a single text file"
	MsgRootLong  = `codepack walks the current directory, collects every C and C++ source
file (.h, .hpp, .cpp, .c, .cc) outside build, VCS and editor directories,
and writes them into codebase.txt, each preceded by a header naming its path.

Files that cannot be read are recorded with an inline error message and
packing continues.`
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgConfigShort     = "Print the built-in configuration"
	MsgConfigLong      = "Print the extension set, ignored directories and output path compiled into this binary."
	MsgCompletionShort = "Generate shell completion script"

	// Flags
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat       = "Summary format (auto, term, text, json)"
	MsgFlagConfigFormat = "Configuration format (toml, yaml)"

	// Version output
	MsgVersionFormat = "codepack version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)
