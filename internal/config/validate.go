package config

import (
	"errors"
	"fmt"
	"strings"
)

var knownPresets = map[string]struct{}{
	"ultrafast": {},
	"superfast": {},
	"veryfast":  {},
	"faster":    {},
	"fast":      {},
	"medium":    {},
	"slow":      {},
	"slower":    {},
	"veryslow":  {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEncoder(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateEncoder() error {
	if c.Encoder.Binary == "" {
		return errors.New("encoder.binary must be set")
	}
	if c.Encoder.VideoCodec == "" {
		return errors.New("encoder.video_codec must be set")
	}
	if _, ok := knownPresets[c.Encoder.Preset]; !ok {
		return fmt.Errorf("encoder.preset %q is not a known x264 preset", c.Encoder.Preset)
	}
	if c.Encoder.CRF < 0 || c.Encoder.CRF > 51 {
		return errors.New("encoder.crf must be between 0 and 51")
	}
	if c.Encoder.AudioCodec == "" {
		return errors.New("encoder.audio_codec must be set")
	}
	if err := validateBitrate(c.Encoder.AudioBitrate); err != nil {
		return err
	}
	if strings.ContainsAny(c.Encoder.OutputSuffix, "/\\") {
		return errors.New("encoder.output_suffix must not contain path separators")
	}
	return nil
}

func validateBitrate(value string) error {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(value, "k"), "m")
	if trimmed == "" {
		return errors.New("encoder.audio_bitrate must be set")
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return fmt.Errorf("encoder.audio_bitrate %q is not a valid bitrate", value)
		}
	}
	return nil
}
