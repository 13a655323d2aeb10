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

import (
	"fmt"

	"github.com/asgardeo/orgappmgt/internal/system/error/serviceerror"
)

// HandleClientError converts a catalog entry into a client error.
func HandleClientError(e serviceerror.ServiceError) *serviceerror.ClientError {
	return serviceerror.NewClientError(e.Error, e.ErrorDescription, e.Code)
}

// HandleServerError converts a catalog entry into a server error carrying the cause.
// The description is formatted with data only when data is given.
func HandleServerError(e serviceerror.ServiceError, cause error, data ...string) *serviceerror.ServerError {
	description := e.ErrorDescription
	if len(data) > 0 {
		args := make([]any, len(data))
		for i, d := range data {
			args[i] = d
		}
		description = fmt.Sprintf(description, args...)
	}
	return serviceerror.NewServerError(e.Error, description, e.Code, cause)
}
