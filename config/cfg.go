package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	PageConfig struct {
		Size          PageSize    `yaml:"size" validate:"gte=0"`
		Orientation   Orientation `yaml:"orientation" validate:"gte=0"`
		Margin        float64     `yaml:"margin" validate:"gte=0"`
		ImagesPerPage int         `yaml:"images_per_page" validate:"oneof=1 2 4"`
	}

	ImagesConfig struct {
		Quality               Quality `yaml:"quality" validate:"gte=0"`
		Optimize              bool    `yaml:"optimize"`
		RemovePNGTransparency bool    `yaml:"remove_png_transparency"`
		MaxCount              int     `yaml:"max_count" validate:"min=1"`
		MaxFileSize           int64   `yaml:"max_file_size" validate:"gte=0"`
	}

	DocumentConfig struct {
		OutputNameTemplate    string       `yaml:"output_name_template"`
		FileNameTransliterate bool         `yaml:"file_name_transliterate"`
		Page                  PageConfig   `yaml:"page"`
		Images                ImagesConfig `yaml:"images"`
	}

	SessionsConfig struct {
		StorePath string `yaml:"store_path" sanitize:"path_clean" validate:"omitempty,filepath"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Sessions  SessionsConfig `yaml:"sessions"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
)

// checkPageGeometry rejects margin values which leave no usable image area:
// margin cannot exceed half of the smaller page dimension.
func checkPageGeometry(sl validator.StructLevel) {
	cfg, ok := sl.Current().Interface().(Config)
	if !ok {
		return
	}
	page := cfg.Document.Page
	w, h := page.Orientation.Apply(page.Size.Dimensions())
	if page.Margin > min(w, h)/2 {
		sl.ReportError(page.Margin, "Margin", "margin", "page_geometry", "")
	}
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg, gencfg.WithAdditionalChecks(checkPageGeometry)); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration tamplate to provide
// sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
