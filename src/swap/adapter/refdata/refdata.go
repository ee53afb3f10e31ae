// Package refdata provides the token and chain catalogues behind the pickers.
package refdata

import (
	"fmt"

	"github.com/MMN3003/swapproxy/src/config"
	"github.com/MMN3003/swapproxy/src/logger"
	"github.com/MMN3003/swapproxy/src/swap/domain"
)

// FromConfig picks the source named by TOKEN_SOURCE.
func FromConfig(source string, gw domain.Gateway, logger *logger.Logger) (domain.ReferenceDataSource, error) {
	switch source {
	case config.TokenSourceLive:
		return NewLive(gw), nil
	case config.TokenSourceStatic:
		logger.Infof("serving static demo tokens and chains")
		return NewStatic(logger), nil
	default:
		return nil, fmt.Errorf("unknown token source %q", source)
	}
}
