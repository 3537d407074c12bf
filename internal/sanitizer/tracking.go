// SPDX-FileCopyrightText: Copyright The Miniflux Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package sanitizer

import (
	"net/url"
	"strings"
)

var (
	trackingParams = map[string]struct{}{
		"fbclid":  {},
		"gclid":   {},
		"dclid":   {},
		"gbraid":  {},
		"wbraid":  {},
		"msclkid": {},
		"twclid":  {},
		"yclid":   {},
		"ysclid":  {},
		"mc_cid":  {},
		"mc_eid":  {},
		"_hsenc":  {},
		"_hsmi":   {},
		"mkt_tok": {},
		"srsltid": {},
	}

	trackingPrefixes = []string{"utm_", "mtm_"}
)

// StripTracking removes well known click identifiers and campaign parameters
// from the query of u. It reports whether anything was removed.
func StripTracking(u *url.URL) bool {
	if u.RawQuery == "" {
		return false
	}

	var stripped bool
	query := u.Query()
	for param := range query {
		if trackingParam(strings.ToLower(param)) {
			query.Del(param)
			stripped = true
		}
	}

	if stripped {
		u.RawQuery = query.Encode()
	}
	return stripped
}

func trackingParam(key string) bool {
	if _, ok := trackingParams[key]; ok {
		return true
	}

	for _, prefix := range trackingPrefixes {
		if strings.HasPrefix(key, prefix) {
			return true
		}
	}
	return false
}
