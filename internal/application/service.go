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

// Package application provides the application management capabilities used by the organization
// application utilities.
package application

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/asgardeo/orgappmgt/internal/application/model"
	"github.com/asgardeo/orgappmgt/internal/system/config"
	"github.com/asgardeo/orgappmgt/internal/system/constants"
	"github.com/asgardeo/orgappmgt/internal/system/log"
)

// applicationIDNamespace namespaces the ids derived for service providers that do not declare one.
var applicationIDNamespace = uuid.MustParse("5d0e6f46-3c8e-4b8a-9a51-0e6c2f1f7b3d")

// ApplicationMgtServiceInterface defines the application management operations.
type ApplicationMgtServiceInterface interface {
	// GetSystemApplications returns the names of the system applications, or nil when none are known.
	GetSystemApplications() ([]string, error)
	// GetServiceProvider returns the service provider with the given name in the given tenant,
	// or nil when no such service provider exists.
	GetServiceProvider(name, tenantDomain string) (*model.ServiceProvider, error)
}

type serviceProviderKey struct {
	tenantDomain string
	name         string
}

// FileBasedApplicationService serves system applications from the deployment configuration and
// service providers from the YAML files of a directory.
type FileBasedApplicationService struct {
	systemApplications []string
	directory          string

	mu        sync.RWMutex
	providers map[serviceProviderKey]*model.ServiceProvider
	loadErr   error

	watcher *fsnotify.Watcher
	done    chan struct{}
}

var _ ApplicationMgtServiceInterface = (*FileBasedApplicationService)(nil)

// Initialize creates the application management service from the runtime configuration and loads
// the configured service providers.
func Initialize() (*FileBasedApplicationService, error) {
	runtime := config.GetRuntime()
	appConfig := runtime.Config.Application

	svc := NewFileBasedApplicationService(appConfig.SystemApplications,
		runtime.ResolvePath(appConfig.ServiceProviderDirectory))
	if err := svc.Load(); err != nil {
		return nil, err
	}
	if appConfig.WatchServiceProviders {
		if err := svc.Watch(); err != nil {
			return nil, err
		}
	}
	return svc, nil
}

// NewFileBasedApplicationService creates a new file based application service. An empty directory
// disables file based service providers.
func NewFileBasedApplicationService(systemApplications []string, directory string) *FileBasedApplicationService {
	var apps []string
	if systemApplications != nil {
		apps = append([]string{}, systemApplications...)
	}
	return &FileBasedApplicationService{
		systemApplications: apps,
		directory:          directory,
		providers:          map[serviceProviderKey]*model.ServiceProvider{},
	}
}

// GetSystemApplications returns the names of the configured system applications.
func (s *FileBasedApplicationService) GetSystemApplications() ([]string, error) {
	if s.systemApplications == nil {
		return nil, nil
	}
	return append([]string{}, s.systemApplications...), nil
}

// GetServiceProvider returns a copy of the service provider with the given name in the given tenant.
// An empty tenant domain refers to the super tenant.
func (s *FileBasedApplicationService) GetServiceProvider(name, tenantDomain string) (
	*model.ServiceProvider, error) {
	if tenantDomain == "" {
		tenantDomain = constants.SuperTenantDomainName
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadErr != nil {
		return nil, fmt.Errorf("service providers are not available: %w", s.loadErr)
	}
	sp, ok := s.providers[serviceProviderKey{tenantDomain: tenantDomain, name: name}]
	if !ok {
		return nil, nil
	}
	return cloneServiceProvider(sp), nil
}

// Load reads the service provider files of the directory and replaces the served set.
// On failure the previous set is kept but lookups report the failure until a load succeeds.
func (s *FileBasedApplicationService) Load() error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FileBasedApplicationService"))

	providers, err := readServiceProviders(s.directory)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.loadErr = err
		logger.Error("Failed to load service providers", log.String("directory", s.directory), log.Error(err))
		return err
	}
	s.providers = providers
	s.loadErr = nil
	logger.Debug("Loaded service providers", log.String("directory", s.directory),
		log.Int("count", len(providers)))
	return nil
}

// Watch reloads the service providers whenever a file in the directory changes.
func (s *FileBasedApplicationService) Watch() error {
	if s.directory == "" {
		return errors.New("no service provider directory configured")
	}
	if s.watcher != nil {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.directory); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			return errors.Join(fmt.Errorf("failed to watch %s: %w", s.directory, err), closeErr)
		}
		return fmt.Errorf("failed to watch %s: %w", s.directory, err)
	}

	s.watcher = watcher
	s.done = make(chan struct{})
	go s.watchLoop(watcher, s.done)
	return nil
}

func (s *FileBasedApplicationService) watchLoop(watcher *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "FileBasedApplicationService"))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !isServiceProviderFile(event.Name) ||
				event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("Service provider directory changed", log.String("file", event.Name),
				log.String("op", event.Op.String()))
			// Load logs its own failures.
			_ = s.Load()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("Service provider watcher failed", log.Error(err))
		}
	}
}

// Close stops watching the directory.
func (s *FileBasedApplicationService) Close() error {
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	<-s.done
	s.watcher = nil
	return err
}

// readServiceProviders decodes every service provider file of the directory.
func readServiceProviders(directory string) (map[serviceProviderKey]*model.ServiceProvider, error) {
	providers := map[serviceProviderKey]*model.ServiceProvider{}
	if directory == "" {
		return providers, nil
	}

	entries, err := os.ReadDir(directory)
	if err != nil {
		return nil, fmt.Errorf("failed to read service provider directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isServiceProviderFile(entry.Name()) {
			continue
		}
		filePath := filepath.Join(directory, entry.Name())
		sp, err := readServiceProvider(filePath)
		if err != nil {
			return nil, err
		}

		key := serviceProviderKey{tenantDomain: sp.TenantDomain, name: sp.Name}
		if _, exists := providers[key]; exists {
			return nil, fmt.Errorf("duplicate service provider %s in tenant %s: %s",
				sp.Name, sp.TenantDomain, filePath)
		}
		providers[key] = sp
	}

	return providers, nil
}

// readServiceProvider decodes a single service provider file and fills in the defaults.
func readServiceProvider(filePath string) (*model.ServiceProvider, error) {
	file, err := os.Open(filepath.Clean(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to open service provider file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.GetLogger().Error("Failed to close service provider file", log.Error(closeErr))
		}
	}()

	var sp model.ServiceProvider
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&sp); err != nil {
		return nil, fmt.Errorf("failed to decode service provider file %s: %w", filePath, err)
	}

	if strings.TrimSpace(sp.Name) == "" {
		return nil, fmt.Errorf("service provider file %s does not define a name", filePath)
	}
	if sp.TenantDomain == "" {
		sp.TenantDomain = constants.SuperTenantDomainName
	}
	if sp.ApplicationID == "" {
		sp.ApplicationID = uuid.NewSHA1(applicationIDNamespace, []byte(sp.TenantDomain+"/"+sp.Name)).String()
	}

	return &sp, nil
}

func isServiceProviderFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// cloneServiceProvider returns a deep copy so callers can mutate the result freely.
func cloneServiceProvider(sp *model.ServiceProvider) *model.ServiceProvider {
	clone := *sp
	clone.Properties = sp.Properties.Clone()
	if sp.LocalAndOutboundAuthConfig != nil {
		authConfig := *sp.LocalAndOutboundAuthConfig
		if steps := sp.LocalAndOutboundAuthConfig.AuthenticationSteps; steps != nil {
			authConfig.AuthenticationSteps = make([]model.AuthenticationStep, len(steps))
			for i, step := range steps {
				step.LocalAuthenticators = append([]string(nil), step.LocalAuthenticators...)
				step.FederatedIdentityProviders = append([]string(nil), step.FederatedIdentityProviders...)
				authConfig.AuthenticationSteps[i] = step
			}
		}
		clone.LocalAndOutboundAuthConfig = &authConfig
	}
	return &clone
}
