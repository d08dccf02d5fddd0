package spec

// RunSpec is the YAML description of one evaluation run. CLI flags override
// anything set here.
type RunSpec struct {
	GTDir          string  `yaml:"gt_dir"`
	PredDir        string  `yaml:"pred_dir"`
	Output         string  `yaml:"output"`
	FieldWeight    float64 `yaml:"field_weight"`
	LineItemWeight float64 `yaml:"line_item_weight"`
	MatchThreshold int     `yaml:"match_threshold"`
}
