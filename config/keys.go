package config

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigLazyseqPrefix = ConfigPrefix + delimiter + "lazyseq"

	ConfigPinPoolPrefix   = ConfigLazyseqPrefix + delimiter + "pinpool"
	ConfigPinPoolCapacity = ConfigPinPoolPrefix + delimiter + "capacity"

	ConfigCachePrefix = ConfigLazyseqPrefix + delimiter + "cache"
	ConfigCachePolicy = ConfigCachePrefix + delimiter + "policy"

	ConfigLogPrefix = ConfigLazyseqPrefix + delimiter + "log"
	ConfigLogLevel  = ConfigLogPrefix + delimiter + "level"
)
