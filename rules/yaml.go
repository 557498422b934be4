package rules

import (
	"os"

	"gopkg.in/yaml.v3"
)

// yamlRule mirrors Rule's shape for YAML-sourced rule files, the format a
// caller not speaking the JSON process-boundary contract would hand-author.
type yamlRule struct {
	Name       string   `yaml:"name"`
	Premises   []string `yaml:"premises"`
	Conclusion string   `yaml:"conclusion"`
	Confidence float64  `yaml:"confidence"`
}

type yamlRuleFile struct {
	Rules []yamlRule `yaml:"rules"`
}

// LoadYAMLFile reads a YAML document of the form:
//
//	rules:
//	  - name: mortality
//	    premises: ["X is_a man"]
//	    conclusion: "X is_a mortal"
//	    confidence: 0.9
//
// into a slice of Rule. A rule with confidence omitted (zero) defaults to 1.0.
func LoadYAMLFile(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc yamlRuleFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	out := make([]Rule, len(doc.Rules))
	for i, r := range doc.Rules {
		conf := r.Confidence
		if conf == 0 {
			conf = 1.0
		}
		out[i] = Rule{Name: r.Name, Premises: r.Premises, Conclusion: r.Conclusion, Confidence: conf}
	}
	return out, nil
}
