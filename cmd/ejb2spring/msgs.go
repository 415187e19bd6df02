package main

// Short messages (one-liners)
const (
	MsgRootShort      = "Resolve target source roots for EJB2-to-Spring migration scaffolds"
	MsgVersionShort   = "Print version information"
	MsgResolveShort   = "Scan a source tree and pick one target root per module"
	MsgGenconfigShort = "Print the default configuration as TOML"
)

// Long messages
const (
	MsgRootLong = `ejb2spring determines, for every build module in a multi-module source
tree, which source root a generated Spring configuration scaffold belongs in.
The result is deterministic: the same tree always yields the same answer,
regardless of scan order.`

	MsgResolveLong = `Resolve scans the given directory (default: current directory) for source
files and per-module configuration fragments, classifies every file into its
owning module and source root, and prints the chosen target root per module.

Modules whose target root already contains the scaffold artifact are skipped,
so re-running on a migrated tree reports nothing to do.`

	MsgGenconfigLong = `Genconfig prints the tool's default configuration in TOML format. Redirect
it to ejb2spring.toml and edit it to change the scaffold file name, the
fragment file name, or the scanned extensions.`
)
