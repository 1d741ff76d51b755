package channel

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"arcctl/internal/config"
)

// Channel describes where azdata releases and installer artifacts come from.
// Path: ~/.arcctl/channel.yaml
type Channel struct {
	// ReleaseURL serves the release descriptor: a JSON document keyed by
	// platform name, each entry carrying a "version" field.
	ReleaseURL string `yaml:"releaseUrl"`
	// MSIURL is the Windows installer artifact.
	MSIURL string `yaml:"msiUrl"`

	BrewTap     string `yaml:"brewTap"`
	BrewFormula string `yaml:"brewFormula"`

	AptKeyURL  string `yaml:"aptKeyUrl"`
	AptRepo    string `yaml:"aptRepo"`
	AptPackage string `yaml:"aptPackage"`
}

// defaultChannel holds the Microsoft-hosted release locations.
var defaultChannel = Channel{
	ReleaseURL:  "https://aka.ms/azdata/release.json",
	MSIURL:      "https://aka.ms/azdata-msi",
	BrewTap:     "microsoft/azdata-cli-release",
	BrewFormula: "azdata-cli",
	AptKeyURL:   "https://packages.microsoft.com/keys/microsoft.asc",
	AptRepo:     "https://packages.microsoft.com/ubuntu/20.04/prod focal main",
	AptPackage:  "azdata-cli",
}

// Default returns the built-in channel.
func Default() Channel {
	return defaultChannel
}

// Path returns ~/.arcctl/channel.yaml
func Path() (string, error) {
	dir, err := config.DotDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "channel.yaml"), nil
}

// Load reads the channel from ~/.arcctl/channel.yaml.
// If the file does not exist, returns the default channel and no error.
// Fields left empty in the file keep their default value.
func Load() (Channel, error) {
	p, err := Path()
	if err != nil {
		return defaultChannel, err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultChannel, nil
		}
		return defaultChannel, err
	}
	ch := defaultChannel
	if err := yaml.Unmarshal(b, &ch); err != nil {
		return defaultChannel, err
	}
	return normalize(ch), nil
}

func normalize(ch Channel) Channel {
	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fill(&ch.ReleaseURL, defaultChannel.ReleaseURL)
	fill(&ch.MSIURL, defaultChannel.MSIURL)
	fill(&ch.BrewTap, defaultChannel.BrewTap)
	fill(&ch.BrewFormula, defaultChannel.BrewFormula)
	fill(&ch.AptKeyURL, defaultChannel.AptKeyURL)
	fill(&ch.AptRepo, defaultChannel.AptRepo)
	fill(&ch.AptPackage, defaultChannel.AptPackage)
	return ch
}
