package bundle

// ModuleDTO is the serialized form of a compiled module handed over by the compiler frontend.
type ModuleDTO struct {
	Ast       string                 `yaml:"ast" json:"ast"`
	Tokens    string                 `yaml:"tokens" json:"tokens"`
	Contracts map[string]ContractDTO `yaml:"contracts" json:"contracts"`
	Errors    []string               `yaml:"errors" json:"errors"`
	// Optimized records whether the frontend ran the optimizer.
	Optimized bool `yaml:"optimized" json:"optimized"`
}

// ContractDTO is the serialized form of one compiled contract.
type ContractDTO struct {
	ABI string `yaml:"abi" json:"abi"`
	Yul string `yaml:"yul" json:"yul"`
	// Bytecode is hex encoded, with or without a 0x prefix.
	Bytecode *string `yaml:"bytecode" json:"bytecode"`
}
