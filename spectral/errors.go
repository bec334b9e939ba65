package spectral

import "errors"

// ErrConfig is returned for invalid estimator options.
var ErrConfig = errors.New("spectral: invalid estimator config")
