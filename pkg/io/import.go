package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/critpath/pkg/errors"
)

// Format identifies a project file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// FormatFromPath infers the file format from the path's extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"cannot infer project format from %q (use .json, .yaml, .toml, or .hcl)", path)
}

// ReadProject decodes a project document in the given format from r.
//
// ReadProject checks only the document syntax and field types. The mode and
// the graph shape are validated by [Project.Input] and the engine. It does
// not close r.
func ReadProject(r io.Reader, format Format) (*Project, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	var p Project
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err = dec.Decode(&p); err == nil {
			// A project file holds exactly one document.
			if _, tokErr := dec.Token(); tokErr != io.EOF {
				err = fmt.Errorf("unexpected data after the project at offset %d", dec.InputOffset())
			}
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&p)
	case FormatTOML:
		var md toml.MetaData
		md, err = toml.Decode(string(data), &p)
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				err = fmt.Errorf("unknown field %q", undecoded[0].String())
			}
		}
	case FormatHCL:
		err = decodeHCL(data, &p)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported project format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s project", format)
	}
	return &p, nil
}

// decodeHCL decodes a project written as HCL:
//
//	mode      = "aon"
//	size      = 3
//	durations = [2, 3, 1]
//
//	dependency {
//	  from = 1
//	  to   = 2
//	}
func decodeHCL(data []byte, p *Project) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, "project.hcl")
	if diags.HasErrors() {
		return diags
	}
	if diags := gohcl.DecodeBody(file.Body, nil, p); diags.HasErrors() {
		return diags
	}
	return nil
}

// ImportProject reads the project file at path, inferring its format from
// the extension.
func ImportProject(path string) (*Project, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "project file %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	p, err := ReadProject(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
