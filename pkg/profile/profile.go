// Package profile holds user-tunable conversion settings loaded from TOML.
package profile

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"subtools/internal/textio"
	"subtools/pkg/ass"
	"subtools/pkg/srt"
)

// Profile configures the script produced when converting plain dialogue.
// Colours use the &HAABBGGRR notation styles use on disk.
type Profile struct {
	PlayResX      int     `toml:"play_res_x"`
	PlayResY      int     `toml:"play_res_y"`
	Font          string  `toml:"font"`
	FontSize      uint8   `toml:"font_size"`
	PrimaryColour string  `toml:"primary_colour"`
	OutlineColour string  `toml:"outline_colour"`
	Spacing       float32 `toml:"spacing"`
	Outline       float32 `toml:"outline"`
	Shadow        float32 `toml:"shadow"`
	MarginV       uint16  `toml:"margin_v"`
	JapaneseFont  string  `toml:"japanese_font"`
}

// Default is the profile used when no configuration file is present.
func Default() Profile {
	return Profile{
		PlayResX:      1920,
		PlayResY:      1080,
		Font:          "Arial",
		FontSize:      66,
		PrimaryColour: "&H00FAFAFA",
		OutlineColour: "&H00F273B6",
		Spacing:       1,
		Outline:       3,
		Shadow:        0,
		MarginV:       20,
		JapaneseFont:  "Yu Gothic UI",
	}
}

// Load reads a TOML profile from path. Absent keys keep their defaults.
func Load(path string) (Profile, error) {
	buffer, err := textio.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	p := Default()
	if err := toml.Unmarshal([]byte(buffer), &p); err != nil {
		return Profile{}, fmt.Errorf("could not parse profile %s: %w", path, err)
	}
	if err := p.validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	return p, nil
}

func (p Profile) validate() error {
	if _, ok := ass.ParseColour(p.PrimaryColour); !ok {
		return fmt.Errorf("bad primary_colour %q", p.PrimaryColour)
	}
	if _, ok := ass.ParseColour(p.OutlineColour); !ok {
		return fmt.Errorf("bad outline_colour %q", p.OutlineColour)
	}
	if p.PlayResX <= 0 || p.PlayResY <= 0 {
		return fmt.Errorf("bad resolution %dx%d", p.PlayResX, p.PlayResY)
	}
	return nil
}

// Style renders the profile as the single style conversions use.
func (p Profile) Style() ass.Style {
	style := ass.ConversionStyle()
	style.FontName = p.Font
	style.FontSize = p.FontSize
	primary, _ := ass.ParseColour(p.PrimaryColour)
	outlineColour, _ := ass.ParseColour(p.OutlineColour)
	style.PrimaryColour = primary
	style.OutlineColour = outlineColour
	style.Spacing = p.Spacing
	style.Outline = p.Outline
	style.Shadow = p.Shadow
	style.MarginV = p.MarginV
	return style
}

// ScriptInfo renders the profile's metadata block.
func (p Profile) ScriptInfo() *ass.ScriptInfo {
	return &ass.ScriptInfo{Lines: []ass.Line{
		ass.NewVariable("ScriptType", "v4.00+"),
		ass.NewVariable("WrapStyle", "0"),
		ass.NewVariable("ScaledBorderAndShadow", "yes"),
		ass.NewVariable("YCbCr Matrix", "TV.709"),
		ass.NewVariable("PlayResX", fmt.Sprint(p.PlayResX)),
		ass.NewVariable("PlayResY", fmt.Sprint(p.PlayResY)),
		{},
	}}
}

// Build converts dialogue into a script styled by the profile.
func (p Profile) Build(dialogue []srt.Dialogue) *ass.Script {
	return ass.BuildScript(dialogue, p.ScriptInfo(), p.Style(), p.JapaneseFont)
}
