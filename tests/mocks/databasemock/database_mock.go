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

// Package databasemock provides mock implementations of the database interfaces for testing.
package databasemock

import (
	"sync"

	"github.com/asgardeo/orgappmgt/internal/system/database/client"
	"github.com/asgardeo/orgappmgt/internal/system/database/model"
)

// DBCall records a single Query or Execute invocation.
type DBCall struct {
	Query model.DBQuery
	Args  []interface{}
}

// MockDBProvider is a mock implementation of the DBProviderInterface.
type MockDBProvider struct {
	// MockGetDBClient defines the behavior for the GetDBClient method.
	MockGetDBClient func(dbName string) (client.DBClientInterface, error)

	mu               sync.Mutex
	getDBClientCalls []string
}

// GetDBClient mocks the GetDBClient method of the DBProviderInterface.
// A fresh MockDBClient is returned when no behavior is defined.
func (m *MockDBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	m.mu.Lock()
	m.getDBClientCalls = append(m.getDBClientCalls, dbName)
	m.mu.Unlock()

	if m.MockGetDBClient != nil {
		return m.MockGetDBClient(dbName)
	}
	return &MockDBClient{}, nil
}

// GetDBClientCalls returns the database names requested so far.
func (m *MockDBProvider) GetDBClientCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.getDBClientCalls...)
}

// MockDBClient is a mock implementation of the DBClientInterface.
type MockDBClient struct {
	// MockQuery defines the behavior for the Query method.
	MockQuery func(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error)
	// MockExecute defines the behavior for the Execute method.
	MockExecute func(query model.DBQuery, args ...interface{}) (int64, error)
	// MockBeginTx defines the behavior for the BeginTx method.
	MockBeginTx func() (model.TxInterface, error)
	// MockClose defines the behavior for the Close method.
	MockClose func() error

	mu           sync.Mutex
	queryCalls   []DBCall
	executeCalls []DBCall
	closeCalls   int
}

// Query mocks the Query method of the DBClientInterface.
func (m *MockDBClient) Query(query model.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
	m.mu.Lock()
	m.queryCalls = append(m.queryCalls, DBCall{Query: query, Args: args})
	m.mu.Unlock()

	if m.MockQuery != nil {
		return m.MockQuery(query, args...)
	}
	return []map[string]interface{}{}, nil
}

// Execute mocks the Execute method of the DBClientInterface.
func (m *MockDBClient) Execute(query model.DBQuery, args ...interface{}) (int64, error) {
	m.mu.Lock()
	m.executeCalls = append(m.executeCalls, DBCall{Query: query, Args: args})
	m.mu.Unlock()

	if m.MockExecute != nil {
		return m.MockExecute(query, args...)
	}
	return 0, nil
}

// BeginTx mocks the BeginTx method of the DBClientInterface.
func (m *MockDBClient) BeginTx() (model.TxInterface, error) {
	if m.MockBeginTx != nil {
		return m.MockBeginTx()
	}
	return nil, nil
}

// Close mocks the Close method of the DBClientInterface.
func (m *MockDBClient) Close() error {
	m.mu.Lock()
	m.closeCalls++
	m.mu.Unlock()

	if m.MockClose != nil {
		return m.MockClose()
	}
	return nil
}

// QueryCalls returns the recorded Query invocations.
func (m *MockDBClient) QueryCalls() []DBCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]DBCall(nil), m.queryCalls...)
}

// ExecuteCalls returns the recorded Execute invocations.
func (m *MockDBClient) ExecuteCalls() []DBCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]DBCall(nil), m.executeCalls...)
}

// CloseCalls returns the number of Close invocations.
func (m *MockDBClient) CloseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closeCalls
}
