package domain

// CompiledContract holds the per-contract output of the compiler.
type CompiledContract struct {
	// ABI is the JSON-encoded interface description.
	ABI string
	// Yul is the intermediate representation before pretty-printing.
	Yul string
	// Bytecode is nil when the compiler did not produce a binary payload,
	// either because it was not requested or because no backend is available.
	Bytecode []byte
}

// HasBytecode reports whether the contract carries a binary payload.
func (c CompiledContract) HasBytecode() bool {
	return c.Bytecode != nil
}

// CompiledModule is the output of compiling one source module.
//
// Contract names must be unique and usable as directory names. The emitter
// creates one directory per name without re-validating it; producers are
// responsible for rejecting duplicates and unsafe names.
type CompiledModule struct {
	// Ast is the module's syntax representation.
	Ast string
	// Tokens is the module's token stream representation.
	Tokens string
	// Contracts maps contract names to their compiled output.
	Contracts map[string]CompiledContract
}

// Drain moves the contract mapping out of the module. The module is left
// without contracts, so a second emission of the same value writes none.
func (m *CompiledModule) Drain() map[string]CompiledContract {
	contracts := m.Contracts
	m.Contracts = nil
	return contracts
}
