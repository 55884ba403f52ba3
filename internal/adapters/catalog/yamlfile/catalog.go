// Package yamlfile carga el catálogo de mascotas desde un documento YAML,
// ya sea el seed embebido o un archivo configurado.
package yamlfile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pet-adoption/internal/domain/pets"
)

//go:embed seed.yaml
var seed []byte

type document struct {
	Pets []petDoc `yaml:"pets"`
}

type petDoc struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Type        string     `yaml:"type"`
	Breed       string     `yaml:"breed"`
	Age         string     `yaml:"age"`
	AgeCategory string     `yaml:"age_category"`
	Location    string     `yaml:"location"`
	Image       string     `yaml:"image"`
	Story       string     `yaml:"story"`
	Traits      traitsDoc  `yaml:"traits"`
	Shelter     shelterDoc `yaml:"shelter"`
}

type traitsDoc struct {
	GoodWithKids bool `yaml:"good_with_kids"`
	HouseTrained bool `yaml:"house_trained"`
	Vaccinated   bool `yaml:"vaccinated"`
}

type shelterDoc struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Phone   string `yaml:"phone"`
}

// Default devuelve el catálogo embebido.
func Default() ([]pets.Pet, error) {
	return Parse(seed)
}

func LoadFile(path string) ([]pets.Pet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	items, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return items, nil
}

// Parse decodifica un documento de catálogo. Campos desconocidos, ids vacíos
// o repetidos invalidan el documento entero.
func Parse(data []byte) ([]pets.Pet, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []pets.Pet{}, nil
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Pets))
	out := make([]pets.Pet, 0, len(doc.Pets))
	for i, d := range doc.Pets {
		id := strings.TrimSpace(d.ID)
		if id == "" {
			return nil, fmt.Errorf("pet #%d: id required", i+1)
		}
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("pet #%d: duplicate id %q", i+1, id)
		}
		seen[id] = struct{}{}

		out = append(out, pets.Pet{
			ID:          id,
			Name:        strings.TrimSpace(d.Name),
			Type:        strings.TrimSpace(d.Type),
			Breed:       strings.TrimSpace(d.Breed),
			Age:         strings.TrimSpace(d.Age),
			AgeCategory: pets.AgeCategory(strings.TrimSpace(d.AgeCategory)),
			Location:    strings.TrimSpace(d.Location),
			Image:       strings.TrimSpace(d.Image),
			Story:       strings.TrimSpace(d.Story),
			Traits: pets.Traits{
				GoodWithKids: d.Traits.GoodWithKids,
				HouseTrained: d.Traits.HouseTrained,
				Vaccinated:   d.Traits.Vaccinated,
			},
			Shelter: pets.Shelter{
				Name:    strings.TrimSpace(d.Shelter.Name),
				Address: strings.TrimSpace(d.Shelter.Address),
				Phone:   strings.TrimSpace(d.Shelter.Phone),
			},
		})
	}
	return out, nil
}
