package config

import "path/filepath"

// TrainingConfig represents the configuration for spam classifier training
type TrainingConfig struct {
	Dir      string
	HamFile  string
	SpamFile string
}

// HamPath returns the full path of the ham corpus file
func (t TrainingConfig) HamPath() string {
	return filepath.Join(t.Dir, t.HamFile)
}

// SpamPath returns the full path of the spam corpus file
func (t TrainingConfig) SpamPath() string {
	return filepath.Join(t.Dir, t.SpamFile)
}

// ReportConfig represents the configuration for report output
type ReportConfig struct {
	OutputDir string
}

// GetTraining returns the training configuration
func (c *Config) GetTraining() TrainingConfig {
	return TrainingConfig{
		Dir:      c.GetString("training.dir"),
		HamFile:  c.GetString("training.ham_file"),
		SpamFile: c.GetString("training.spam_file"),
	}
}

// GetReport returns the report configuration
func (c *Config) GetReport() ReportConfig {
	return ReportConfig{
		OutputDir: c.GetString("report.output_dir"),
	}
}
