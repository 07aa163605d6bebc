package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"dnotes/internal/domain/entity"
	"dnotes/internal/domain/service"
	"dnotes/internal/errors"
)

var codeSpace = big.NewInt(1_000_000)

type randomCodeGenerator struct{}

// NewCodeGenerator returns a generator of uniformly distributed 6-digit codes.
func NewCodeGenerator() service.CodeGenerator {
	return randomCodeGenerator{}
}

func (randomCodeGenerator) Next() (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate validation code")
	}

	return fmt.Sprintf("%0*d", entity.ValidationCodeLength, n.Int64()), nil
}
