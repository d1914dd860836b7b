package level

import (
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format selects a level export encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// Snapshot is the serializable form of a built level.
type Snapshot struct {
	Level        int                   `yaml:"level" msgpack:"level"`
	Seed         int64                 `yaml:"seed" msgpack:"seed"`
	Theme        string                `yaml:"theme" msgpack:"theme"`
	Width        float64               `yaml:"width" msgpack:"width"`
	Platforms    []PlatformSnapshot    `yaml:"platforms" msgpack:"platforms"`
	Enemies      []EnemySnapshot       `yaml:"enemies" msgpack:"enemies"`
	Collectibles []CollectibleSnapshot `yaml:"collectibles" msgpack:"collectibles"`
	Report       ReportSnapshot        `yaml:"report" msgpack:"report"`
}

// PlatformSnapshot is one exported platform.
type PlatformSnapshot struct {
	ID       int     `yaml:"id" msgpack:"id"`
	Kind     string  `yaml:"kind" msgpack:"kind"`
	X        float64 `yaml:"x" msgpack:"x"`
	Y        float64 `yaml:"y" msgpack:"y"`
	Width    float64 `yaml:"width" msgpack:"width"`
	Ice      bool    `yaml:"ice,omitempty" msgpack:"ice,omitempty"`
	Cracking bool    `yaml:"cracking,omitempty" msgpack:"cracking,omitempty"`
}

// EnemySnapshot is one exported enemy spawn.
type EnemySnapshot struct {
	Kind     string  `yaml:"kind" msgpack:"kind"`
	X        float64 `yaml:"x" msgpack:"x"`
	Y        float64 `yaml:"y" msgpack:"y"`
	Platform int     `yaml:"platform" msgpack:"platform"`
}

// CollectibleSnapshot is one exported collectible.
type CollectibleSnapshot struct {
	Kind string  `yaml:"kind" msgpack:"kind"`
	X    float64 `yaml:"x" msgpack:"x"`
	Y    float64 `yaml:"y" msgpack:"y"`
}

// ReportSnapshot mirrors Report.
type ReportSnapshot struct {
	Bridges          int  `yaml:"bridges" msgpack:"bridges"`
	CapHit           bool `yaml:"cap_hit" msgpack:"cap_hit"`
	EnemiesRequested int  `yaml:"enemies_requested" msgpack:"enemies_requested"`
	EnemiesSpawned   int  `yaml:"enemies_spawned" msgpack:"enemies_spawned"`
}

// Snapshot captures the level for export.
func (l *Level) Snapshot() Snapshot {
	s := Snapshot{
		Level: l.Number,
		Seed:  l.Seed,
		Theme: l.Theme.Name,
		Width: l.Width,
		Report: ReportSnapshot{
			Bridges:          l.Report.Bridges,
			CapHit:           l.Report.CapHit,
			EnemiesRequested: l.Report.EnemiesRequested,
			EnemiesSpawned:   l.Report.EnemiesSpawned,
		},
	}
	for _, p := range l.Platforms {
		s.Platforms = append(s.Platforms, PlatformSnapshot{
			ID: p.ID, Kind: p.Kind.String(), X: p.X, Y: p.Y, Width: p.Width,
			Ice: p.IsIce, Cracking: p.CrackingIce,
		})
	}
	for _, e := range l.Enemies {
		s.Enemies = append(s.Enemies, EnemySnapshot{Kind: string(e.Kind), X: e.Pos.X, Y: e.Pos.Y, Platform: e.PlatformID})
	}
	for _, c := range l.Collectibles {
		s.Collectibles = append(s.Collectibles, CollectibleSnapshot{Kind: string(c.Kind), X: c.Pos.X, Y: c.Pos.Y})
	}
	return s
}

// Encode serializes the level in the requested format.
func (l *Level) Encode(f Format) ([]byte, error) {
	switch f {
	case FormatText, "":
		return []byte(l.Describe()), nil
	case FormatYAML:
		data, err := yaml.Marshal(l.Snapshot())
		if err != nil {
			return nil, fmt.Errorf("level: yaml encode: %w", err)
		}
		return data, nil
	case FormatMsgpack:
		data, err := msgpack.Marshal(l.Snapshot())
		if err != nil {
			return nil, fmt.Errorf("level: msgpack encode: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("level: unknown format %q", f)
	}
}

// DecodeSnapshot parses a snapshot previously written by Encode.
func DecodeSnapshot(data []byte, f Format) (Snapshot, error) {
	var s Snapshot
	switch f {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("level: yaml decode: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("level: msgpack decode: %w", err)
		}
	default:
		return s, fmt.Errorf("level: cannot decode format %q", f)
	}
	return s, nil
}

// Describe returns a human-readable summary, one platform per line.
func (l *Level) Describe() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Level %d  theme=%s  seed=%d\n", l.Number, l.Theme.Name, l.Seed)
	fmt.Fprintf(&b, "platforms=%d bridges=%d cap_hit=%v enemies=%d/%d collectibles=%d/%d\n",
		l.Report.Platforms, l.Report.Bridges, l.Report.CapHit,
		l.Report.EnemiesSpawned, l.Report.EnemiesRequested,
		l.Report.CollectiblesSpawned, l.Report.CollectiblesRequested)
	for _, p := range l.Platforms {
		flags := ""
		if p.CrackingIce {
			flags = " cracking"
		} else if p.IsIce {
			flags = " ice"
		}
		fmt.Fprintf(&b, "  #%-3d %-7s x=%7.1f y=%5.1f w=%5.1f%s\n", p.ID, p.Kind, p.X, p.Y, p.Width, flags)
	}
	for _, e := range l.Enemies {
		fmt.Fprintf(&b, "  enemy %-9s x=%7.1f y=%5.1f on #%d\n", e.Kind, e.Pos.X, e.Pos.Y, e.PlatformID)
	}
	return b.String()
}
