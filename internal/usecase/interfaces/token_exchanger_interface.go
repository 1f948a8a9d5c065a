package interfaces

import "context"

// ITokenExchanger trades the stored refresh credential for a fresh access
// token at the identity provider.
type ITokenExchanger interface {
	Exchange(ctx context.Context) (accessToken string, err error)
}
