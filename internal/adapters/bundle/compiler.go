// Package bundle implements ports.Compiler by decoding module bundles written by the compiler frontend.
package bundle

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"go.trai.ch/kiln/internal/core/domain"
	"go.trai.ch/kiln/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Compiler reads a module bundle from disk and converts it into a domain.CompiledModule.
type Compiler struct {
	logger ports.Logger
}

// NewCompiler creates a new bundle Compiler.
func NewCompiler(log ports.Logger) *Compiler {
	return &Compiler{logger: log}
}

// Compile decodes the bundle at path. The decoder is chosen by file extension:
// .yaml and .yml use YAML, .json and .jsonc use JSON with comments allowed.
func (c *Compiler) Compile(ctx context.Context, path string, opts ports.CompileOptions) (*domain.CompiledModule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrSourceReadFailed, err), "unable to read module bundle"), "source", path)
	}

	dto, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, zerr.With(err, "source", path)
	}

	if len(dto.Errors) > 0 {
		diagnostics := strings.Join(dto.Errors, "\n")
		return nil, zerr.With(zerr.Wrap(domain.ErrCompilationFailed, diagnostics), "source", path)
	}

	if opts.Optimize && !dto.Optimized && c.logger != nil {
		c.logger.Warn(fmt.Sprintf("%s was produced without the optimizer; --optimize has no effect", path))
	}

	module, err := toDomain(dto, opts)
	if err != nil {
		return nil, zerr.With(err, "source", path)
	}

	if c.logger != nil {
		c.logger.Info(fmt.Sprintf("compiled %s: %d contract(s)", path, len(module.Contracts)))
	}
	return module, nil
}

// Decode parses bundle data according to the file extension ext.
func Decode(ext string, data []byte) (*ModuleDTO, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	case ".json", ".jsonc":
		return decodeJSON(data)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrUnsupportedBundle, fmt.Sprintf("extension %q", ext)), "extension", ext)
	}
}

func decodeYAML(data []byte) (*ModuleDTO, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, malformed(err)
	}

	if err := checkYAMLContractNames(&root); err != nil {
		return nil, err
	}

	var dto ModuleDTO
	if err := root.Decode(&dto); err != nil {
		return nil, malformed(err)
	}
	return &dto, nil
}

// checkYAMLContractNames rejects repeated keys under the contracts mapping.
func checkYAMLContractNames(root *yaml.Node) error {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil
	}
	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		if doc.Content[i].Value != "contracts" {
			continue
		}
		contracts := doc.Content[i+1]
		if contracts.Kind != yaml.MappingNode {
			return nil
		}
		names := make([]string, 0, len(contracts.Content)/2)
		for j := 0; j+1 < len(contracts.Content); j += 2 {
			names = append(names, contracts.Content[j].Value)
		}
		return checkUnique(names)
	}
	return nil
}

func decodeJSON(data []byte) (*ModuleDTO, error) {
	stripped := jsonc.ToJSON(data)

	var top map[string]json.RawMessage
	if err := json.Unmarshal(stripped, &top); err != nil {
		return nil, malformed(err)
	}

	if raw, ok := top["contracts"]; ok {
		names, err := objectKeys(raw)
		if err != nil {
			return nil, malformed(err)
		}
		if err := checkUnique(names); err != nil {
			return nil, err
		}
	}

	var dto ModuleDTO
	if err := json.Unmarshal(stripped, &dto); err != nil {
		return nil, malformed(err)
	}
	return &dto, nil
}

// objectKeys lists the keys of a JSON object in document order, including repeats.
func objectKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		// null or a non-object; the typed decode reports the mismatch.
		return nil, nil
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

func malformed(err error) error {
	return zerr.Wrap(errors.Join(domain.ErrCompilationFailed, err), "malformed module bundle")
}

func checkUnique(names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			return zerr.With(zerr.Wrap(domain.ErrDuplicateContract, fmt.Sprintf("contract %q", name)), "contract", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// checkContractName rejects names that would not map to a single directory
// directly below the output directory.
func checkContractName(name string) error {
	if name == "" || name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return zerr.With(zerr.Wrap(domain.ErrInvalidContractName, fmt.Sprintf("contract %q", name)), "contract", name)
	}
	return nil
}

func toDomain(dto *ModuleDTO, opts ports.CompileOptions) (*domain.CompiledModule, error) {
	module := &domain.CompiledModule{
		Ast:       dto.Ast,
		Tokens:    dto.Tokens,
		Contracts: make(map[string]domain.CompiledContract, len(dto.Contracts)),
	}

	for name, c := range dto.Contracts {
		if err := checkContractName(name); err != nil {
			return nil, err
		}

		contract := domain.CompiledContract{
			ABI: c.ABI,
			Yul: c.Yul,
		}

		if opts.GenerateBytecode && c.Bytecode != nil {
			code, err := normalizeBytecode(*c.Bytecode)
			if err != nil {
				return nil, zerr.With(err, "contract", name)
			}
			contract.Bytecode = code
		}

		module.Contracts[name] = contract
	}
	return module, nil
}

// normalizeBytecode validates hex bytecode and returns it without the 0x prefix.
// The .bin artifact holds the hex text, as solc writes it.
func normalizeBytecode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if _, err := hex.DecodeString(s); err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrInvalidBytecode, err), "bytecode is not hex")
	}
	return []byte(s), nil
}
