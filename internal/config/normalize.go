package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeEncoder()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = filepath.Join(c.Paths.StateDir, "logs")
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeEncoder() {
	c.Encoder.Binary = strings.TrimSpace(c.Encoder.Binary)
	if c.Encoder.Binary == "" {
		c.Encoder.Binary = defaultEncoderBinary
	}
	c.Encoder.VideoCodec = strings.TrimSpace(c.Encoder.VideoCodec)
	if c.Encoder.VideoCodec == "" {
		c.Encoder.VideoCodec = defaultVideoCodec
	}
	c.Encoder.Preset = strings.ToLower(strings.TrimSpace(c.Encoder.Preset))
	if c.Encoder.Preset == "" {
		c.Encoder.Preset = defaultPreset
	}
	if c.Encoder.CRF <= 0 {
		c.Encoder.CRF = defaultCRF
	}
	c.Encoder.AudioCodec = strings.TrimSpace(c.Encoder.AudioCodec)
	if c.Encoder.AudioCodec == "" {
		c.Encoder.AudioCodec = defaultAudioCodec
	}
	c.Encoder.AudioBitrate = strings.ToLower(strings.TrimSpace(c.Encoder.AudioBitrate))
	if c.Encoder.AudioBitrate == "" {
		c.Encoder.AudioBitrate = defaultAudioBitrate
	}
	c.Encoder.OutputSuffix = strings.TrimSpace(c.Encoder.OutputSuffix)
	if c.Encoder.OutputSuffix == "" {
		c.Encoder.OutputSuffix = defaultOutputSuffix
	}
}

func (c *Config) normalizeHistory() error {
	var err error
	if strings.TrimSpace(c.History.Dir) == "" {
		c.History.Dir = c.Paths.StateDir
	}
	if c.History.Dir, err = expandPath(c.History.Dir); err != nil {
		return fmt.Errorf("history.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
