package chain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedConfig is matched by every *ConfigError.
	ErrUnsupportedConfig = errors.New("unsupported chain and protocol version")

	ErrChainMismatch = errors.New("rpc chain id mismatch")
)

// ConfigError reports a (chain, version) pair with no known deployment.
type ConfigError struct {
	ChainID ChainID
	Version ProtocolVersion
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: chain %d, version %s", ErrUnsupportedConfig, e.ChainID, e.Version)
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrUnsupportedConfig
}

// TransportError wraps a failed chain RPC call.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("chain rpc %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError wraps a malformed ABI return value or event log.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
