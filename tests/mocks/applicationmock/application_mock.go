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

// Package applicationmock provides a mock implementation of the application management service.
package applicationmock

import (
	"sync"

	"github.com/asgardeo/orgappmgt/internal/application/model"
)

// ServiceProviderLookup records a single GetServiceProvider invocation.
type ServiceProviderLookup struct {
	Name         string
	TenantDomain string
}

// MockApplicationMgtService is a mock implementation of the ApplicationMgtServiceInterface.
type MockApplicationMgtService struct {
	// MockGetSystemApplications defines the behavior for the GetSystemApplications method.
	MockGetSystemApplications func() ([]string, error)
	// MockGetServiceProvider defines the behavior for the GetServiceProvider method.
	MockGetServiceProvider func(name, tenantDomain string) (*model.ServiceProvider, error)

	mu                         sync.Mutex
	getSystemApplicationsCalls int
	getServiceProviderCalls    []ServiceProviderLookup
}

// GetSystemApplications mocks the GetSystemApplications method.
func (m *MockApplicationMgtService) GetSystemApplications() ([]string, error) {
	m.mu.Lock()
	m.getSystemApplicationsCalls++
	m.mu.Unlock()

	if m.MockGetSystemApplications != nil {
		return m.MockGetSystemApplications()
	}
	return nil, nil
}

// GetServiceProvider mocks the GetServiceProvider method.
func (m *MockApplicationMgtService) GetServiceProvider(name, tenantDomain string) (
	*model.ServiceProvider, error) {
	m.mu.Lock()
	m.getServiceProviderCalls = append(m.getServiceProviderCalls,
		ServiceProviderLookup{Name: name, TenantDomain: tenantDomain})
	m.mu.Unlock()

	if m.MockGetServiceProvider != nil {
		return m.MockGetServiceProvider(name, tenantDomain)
	}
	return nil, nil
}

// GetSystemApplicationsCalls returns the number of GetSystemApplications invocations.
func (m *MockApplicationMgtService) GetSystemApplicationsCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.getSystemApplicationsCalls
}

// GetServiceProviderCalls returns the recorded GetServiceProvider invocations.
func (m *MockApplicationMgtService) GetServiceProviderCalls() []ServiceProviderLookup {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ServiceProviderLookup(nil), m.getServiceProviderCalls...)
}
