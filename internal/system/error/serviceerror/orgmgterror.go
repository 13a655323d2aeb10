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

package serviceerror

import "fmt"

// ClientError is an organization management error attributable to the caller.
type ClientError struct {
	Code        string
	Message     string
	Description string
}

// NewClientError creates a client error from the given details.
func NewClientError(message, description, code string) *ClientError {
	return &ClientError{
		Code:        code,
		Message:     message,
		Description: description,
	}
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	return formatMessage(e.Code, e.Message, e.Description)
}

// ServiceError projects the error to the service layer representation.
func (e *ClientError) ServiceError() ServiceError {
	return ServiceError{
		Code:             e.Code,
		Type:             ClientErrorType,
		Error:            e.Message,
		ErrorDescription: e.Description,
	}
}

// ServerError is an organization management error caused by a system failure.
type ServerError struct {
	Code        string
	Message     string
	Description string
	Cause       error
}

// NewServerError creates a server error from the given details and cause.
func NewServerError(message, description, code string, cause error) *ServerError {
	return &ServerError{
		Code:        code,
		Message:     message,
		Description: description,
		Cause:       cause,
	}
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	msg := formatMessage(e.Code, e.Message, e.Description)
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *ServerError) Unwrap() error {
	return e.Cause
}

// ServiceError projects the error to the service layer representation.
func (e *ServerError) ServiceError() ServiceError {
	return ServiceError{
		Code:             e.Code,
		Type:             ServerErrorType,
		Error:            e.Message,
		ErrorDescription: e.Description,
	}
}

func formatMessage(code, message, description string) string {
	msg := message
	if code != "" {
		msg = fmt.Sprintf("%s - %s", code, message)
	}
	if description != "" {
		msg += " (" + description + ")"
	}
	return msg
}
