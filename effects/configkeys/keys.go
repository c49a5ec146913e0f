package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigEffectPrefix = ConfigPrefix + delimiter + "effect"

	ConfigEffectLogPrefix = ConfigEffectPrefix + delimiter + "log"

	ConfigEffectLogHandlerPrefix     = ConfigEffectLogPrefix + delimiter + "handler"
	ConfigEffectLogHandlerBufferSize = ConfigEffectLogHandlerPrefix + delimiter + "buffer_size"

	ConfigMCMPrefix = ConfigPrefix + delimiter + "mcm"

	ConfigMCMSeed     = ConfigMCMPrefix + delimiter + "seed"
	ConfigMCMMaxDim   = ConfigMCMPrefix + delimiter + "max_dim"
	ConfigMCMStore    = ConfigMCMPrefix + delimiter + "store"
	ConfigMCMParallel = ConfigMCMPrefix + delimiter + "parallel"
)
