package config

const (
	defaultStateDir = "~/.local/share/shrink"
	defaultLogDir   = "~/.local/share/shrink/logs"

	defaultEncoderBinary = "ffmpeg"
	defaultVideoCodec    = "libx264"
	defaultPreset        = "veryfast"
	defaultCRF           = 28
	defaultAudioCodec    = "aac"
	defaultAudioBitrate  = "128k"
	defaultOutputSuffix  = "_compressed"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults. The encoder
// defaults bias toward smaller output over maximal quality: libx264 at CRF 28
// with the veryfast preset and 128k AAC audio.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Encoder: Encoder{
			Binary:       defaultEncoderBinary,
			VideoCodec:   defaultVideoCodec,
			Preset:       defaultPreset,
			CRF:          defaultCRF,
			AudioCodec:   defaultAudioCodec,
			AudioBitrate: defaultAudioBitrate,
			OutputSuffix: defaultOutputSuffix,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
