package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// SpeciesConfig 作物品种配置
type SpeciesConfig struct {
	Name        string  `yaml:"name"`
	GrowSpeed   float64 `yaml:"growSpeed"`   // 每天（已浇水）增长的年龄
	Frames      int     `yaml:"frames"`      // 贴图帧数，MaxAge = Frames - 1
	YOffset     float64 `yaml:"yOffset"`     // 贴图底边相对土壤底边的偏移
	FrameWidth  float64 `yaml:"frameWidth"`  // 无贴图时使用的尺寸
	FrameHeight float64 `yaml:"frameHeight"` // 无贴图时使用的尺寸
}

// MaxAge 返回最大年龄（帧数 - 1）
func (s *SpeciesConfig) MaxAge() int {
	return s.Frames - 1
}

// SpeciesTable 按名称索引的品种表
type SpeciesTable map[string]*SpeciesConfig

type speciesFile struct {
	Species []*SpeciesConfig `yaml:"species"`
}

// ParseSpecies 从 YAML 数据解析品种表
func ParseSpecies(data []byte) (SpeciesTable, error) {
	var f speciesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse species YAML: %w", err)
	}

	table := make(SpeciesTable, len(f.Species))
	for _, s := range f.Species {
		if s.Name == "" {
			return nil, fmt.Errorf("species entry without name")
		}
		if s.Frames < 1 {
			return nil, fmt.Errorf("species %q: frames must be >= 1, got %d", s.Name, s.Frames)
		}
		if s.GrowSpeed <= 0 {
			return nil, fmt.Errorf("species %q: growSpeed must be > 0, got %v", s.Name, s.GrowSpeed)
		}
		if _, dup := table[s.Name]; dup {
			return nil, fmt.Errorf("species %q defined twice", s.Name)
		}
		table[s.Name] = s
	}
	return table, nil
}

// Names 返回按字母排序的品种名
func (t SpeciesTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup 查找品种
// 找不到时错误信息中附带拼写建议
func (t SpeciesTable) Lookup(name string) (*SpeciesConfig, error) {
	if s, ok := t[name]; ok {
		return s, nil
	}
	if hint := Suggest(name, t.Names()); hint != "" {
		return nil, fmt.Errorf("unknown species %q (did you mean %q?)", name, hint)
	}
	return nil, fmt.Errorf("unknown species %q (known: %v)", name, t.Names())
}
