package schema

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/solidata/solidata/pkg/errors"
)

// schemaDoc is the YAML shape of a schema declaration file.
type schemaDoc struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Version     int        `yaml:"version"`
	Description string     `yaml:"description"`
	Comment     string     `yaml:"comment"`
	Fields      []fieldDoc `yaml:"fields"`
}

type fieldDoc struct {
	ID      string `yaml:"id"`
	Header  string `yaml:"header"`
	Desc    string `yaml:"desc"`
	Comment string `yaml:"comment"`
}

// Parse builds a Schema from a YAML declaration.
func Parse(data []byte) (*Schema, error) {
	var doc schemaDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	return fromDoc(doc)
}

// Load reads a schema declaration from a YAML file.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		if parseErr, ok := err.(*errors.ParseError); ok {
			parseErr.File = path
		}
		return nil, err
	}
	return s, nil
}

func fromDoc(doc schemaDoc) (*Schema, error) {
	fields := make([]Field, len(doc.Fields))
	for i, fd := range doc.Fields {
		fields[i] = Field{
			ID:      FieldID(fd.ID),
			Index:   -1,
			Header:  fd.Header,
			Desc:    fd.Desc,
			Comment: fd.Comment,
		}
	}

	opts := []Option{WithVersion(doc.Version)}
	if doc.Description != "" {
		opts = append(opts, WithDescription(doc.Description))
	}
	if doc.Comment != "" {
		opts = append(opts, WithComment(doc.Comment))
	}
	return New(doc.ID, doc.Name, fields, opts...)
}
