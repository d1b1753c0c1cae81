package config

type yamlConfig struct {
	Server struct {
		Addr          string  `yaml:"addr"`
		AllowedOrigin *string `yaml:"allowed_origin"`
		MaxUploadMB   *int64  `yaml:"max_upload_mb"`
	} `yaml:"server"`

	Workspace struct {
		Root          string `yaml:"root"`
		KeepArtifacts *bool  `yaml:"keep_artifacts"`
	} `yaml:"workspace"`

	Layout struct {
		SheetWidth    *float64 `yaml:"sheet_width"`
		SheetHeight   *float64 `yaml:"sheet_height"`
		MarginTop     *float64 `yaml:"margin_top"`
		MarginLeft    *float64 `yaml:"margin_left"`
		MarginRight   *float64 `yaml:"margin_right"`
		Spacing       *float64 `yaml:"spacing"`
		Label         *bool    `yaml:"label"`
		LabelFontSize *float64 `yaml:"label_font_size"`
		LabelOffsetX  *float64 `yaml:"label_offset_x"`
		LabelOffsetY  *float64 `yaml:"label_offset_y"`
	} `yaml:"layout"`

	Log struct {
		Debug  *bool  `yaml:"debug"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// apply overlays parsed values on top of defaults.
func apply(cfg *Config, y yamlConfig) {
	if y.Server.Addr != "" {
		cfg.Server.Addr = y.Server.Addr
	}
	setIf(&cfg.Server.AllowedOrigin, y.Server.AllowedOrigin)
	setIf(&cfg.Server.MaxUploadMB, y.Server.MaxUploadMB)

	if y.Workspace.Root != "" {
		cfg.Workspace.Root = y.Workspace.Root
	}
	setIf(&cfg.Workspace.KeepArtifacts, y.Workspace.KeepArtifacts)

	l := &cfg.Layout
	setIf(&l.SheetWidth, y.Layout.SheetWidth)
	setIf(&l.SheetHeight, y.Layout.SheetHeight)
	setIf(&l.MarginTop, y.Layout.MarginTop)
	setIf(&l.MarginLeft, y.Layout.MarginLeft)
	setIf(&l.MarginRight, y.Layout.MarginRight)
	setIf(&l.Spacing, y.Layout.Spacing)
	setIf(&l.Label, y.Layout.Label)
	setIf(&l.LabelFontSize, y.Layout.LabelFontSize)
	setIf(&l.LabelOffsetX, y.Layout.LabelOffsetX)
	setIf(&l.LabelOffsetY, y.Layout.LabelOffsetY)

	setIf(&cfg.Log.Debug, y.Log.Debug)
	if y.Log.Format != "" {
		cfg.Log.Format = y.Log.Format
	}
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
