// Copyright (C) 2026, Gateway Labs Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

const (
	BaseDirName = ".contract-cli"
	LogDir      = "logs"

	DefaultConfigFileName = "config"
	DefaultConfigFileType = "json"

	// DefaultNodeURL is the websocket endpoint used when --url is not given.
	DefaultNodeURL = "ws://localhost:9944"

	// ManifestFileName is the project manifest read from the project root.
	ManifestFileName = "contract.yaml"

	// TargetDirName holds build artifacts relative to the project root.
	TargetDirName = "target"

	// PrunedWasmSuffix is appended to the package or component name to form
	// the default bytecode artifact file name.
	PrunedWasmSuffix = "-pruned.wasm"

	MetadataFileName = "metadata.json"

	// DefaultTemplateRepo is cloned by `contract new` unless overridden in config.
	DefaultTemplateRepo = "https://github.com/gatewaylabs/contract-template"

	// DefaultDeployGasLimit applies to deploy, instantiate and runtime-gateway calls.
	DefaultDeployGasLimit uint64 = 500_000_000
	// DefaultCallGasLimit applies to contracts-gateway and direct contract calls.
	DefaultCallGasLimit uint64 = 3_875_000_000

	DefaultEndowment uint64 = 0
	DefaultValue     uint64 = 0
	DefaultPhase     uint8  = 0
	DefaultCallData         = "00"

	// CodeHashLength is the byte length of an on-chain code hash.
	CodeHashLength = 32

	ConfigNodeURLKey      = "node-url"
	ConfigTemplateRepoKey = "template-repo"
	ConfigToolchainKey    = "toolchain-path"

	EnvNodeURL      = "CONTRACT_NODE_URL"
	EnvTemplateRepo = "CONTRACT_TEMPLATE_REPO"
	EnvToolchain    = "CONTRACT_TOOLCHAIN_PATH"

	// DefaultToolchainBin is the external WASM toolchain invoked by build
	// and generate-metadata. Resolution order: flag, env, config, PATH.
	DefaultToolchainBin = "wasm-buildc"

	MaxLogFileSize   = 4 * 1024 * 1024
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 8

	UserOnlyWriteAllReadPerms  = 0o644
	UserOnlyWriteAllExecPerms  = 0o755
	UserOnlyReadWriteExecPerms = 0o700
)
