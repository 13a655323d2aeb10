/*
 * Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package orgapp

import "context"

type b2bApplicationIDsKey struct{}

// SetB2BApplicationIDs returns a copy of the context carrying the given B2B application ids.
// Any value set on a parent context is replaced.
func SetB2BApplicationIDs(ctx context.Context, ids []string) context.Context {
	var stored []string
	if ids != nil {
		stored = make([]string, len(ids))
		copy(stored, ids)
	}
	return context.WithValue(ctx, b2bApplicationIDsKey{}, stored)
}

// GetB2BApplicationIDs returns the B2B application ids carried by the context and whether they were set.
func GetB2BApplicationIDs(ctx context.Context) ([]string, bool) {
	ids, ok := ctx.Value(b2bApplicationIDsKey{}).([]string)
	if !ok || ids == nil {
		return nil, false
	}
	result := make([]string, len(ids))
	copy(result, ids)
	return result, true
}

// ClearB2BApplicationIDs returns a copy of the context with no B2B application ids set.
func ClearB2BApplicationIDs(ctx context.Context) context.Context {
	return context.WithValue(ctx, b2bApplicationIDsKey{}, []string(nil))
}
