// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"strings"
)

// SelectCarrierType determines which parameter carries the Request Object. The 'request' parameter takes
// precedence over the 'request_uri' parameter when both are present. Blank values are treated as absent. If
// neither carries a value then false is returned.
func SelectCarrierType(view RequestView) (carrier CarrierType, ok bool) {
	switch {
	case isNotBlank(view.GetParam(CarrierTypeRequest.Param())):
		return CarrierTypeRequest, true
	case isNotBlank(view.GetParam(CarrierTypeRequestURI.Param())):
		return CarrierTypeRequestURI, true
	default:
		return "", false
	}
}

func isNotBlank(value string) bool {
	return len(strings.TrimSpace(value)) != 0
}
