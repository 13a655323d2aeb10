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

package log

import "go.uber.org/zap"

// Field represents a key-value pair attached to a log entry.
type Field struct {
	internal zap.Field
}

// String creates a string field.
func String(key, value string) Field {
	return Field{internal: zap.String(key, value)}
}

// Strings creates a string slice field.
func Strings(key string, values []string) Field {
	return Field{internal: zap.Strings(key, values)}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{internal: zap.Int(key, value)}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{internal: zap.Bool(key, value)}
}

// Any creates a field holding an arbitrary value.
func Any(key string, value interface{}) Field {
	return Field{internal: zap.Any(key, value)}
}

// Error creates a field for an error under the "error" key.
func Error(err error) Field {
	return Field{internal: zap.NamedError("error", err)}
}
