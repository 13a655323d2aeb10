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

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/asgardeo/orgappmgt/internal/application"
	"github.com/asgardeo/orgappmgt/internal/orgapp"
	"github.com/asgardeo/orgappmgt/internal/system/config"
	"github.com/asgardeo/orgappmgt/internal/system/constants"
	"github.com/asgardeo/orgappmgt/internal/system/database/provider"
	"github.com/asgardeo/orgappmgt/internal/system/log"
)

const loggerComponentName = "OrgAppCtl"

// serviceFactory builds the organization application management service for the given home
// directory. The returned function releases the resources held by the service.
type serviceFactory func(home string) (orgapp.OrgAppMgtServiceInterface, func() error, error)

// cli holds the state shared by the commands of a single invocation.
type cli struct {
	factory serviceFactory
	home    string

	service orgapp.OrgAppMgtServiceInterface
	release func() error
}

// newRootCommand creates the root command with all sub commands registered.
func newRootCommand(factory serviceFactory) *cobra.Command {
	c := &cli{factory: factory}

	rootCmd := &cobra.Command{
		Use:   "orgappctl",
		Short: "Organization application management utilities",
		Long: `Inspect and update the organization sharing metadata of applications.

The deployment configuration is read from <home>/repository/conf/deployment.yaml.`,
		SilenceUsage: true,
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return c.close()
		},
	}
	rootCmd.PersistentFlags().StringVar(&c.home, "home", "",
		"Path to the server home directory (defaults to the working directory)")

	rootCmd.AddCommand(newSystemAppCommand(c))
	rootCmd.AddCommand(newDefaultAuthCommand(c))
	rootCmd.AddCommand(newOrgSSOIDPCommand())
	rootCmd.AddCommand(newDBCheckCommand(c))
	rootCmd.AddCommand(newServiceProviderCommand(c))

	return rootCmd
}

// orgAppService returns the service, building it on first use.
func (c *cli) orgAppService() (orgapp.OrgAppMgtServiceInterface, error) {
	if c.service != nil {
		return c.service, nil
	}
	if c.factory == nil {
		return nil, errors.New("service factory is not configured")
	}

	home := c.home
	if home == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
		home = dir
	}

	service, release, err := c.factory(home)
	if err != nil {
		return nil, err
	}
	c.service = service
	c.release = release
	return service, nil
}

func (c *cli) close() error {
	if c.release == nil {
		return nil
	}
	release := c.release
	c.release = nil
	c.service = nil
	return release()
}

// initServices loads the deployment configuration and wires the services used by the commands.
func initServices(home string) (orgapp.OrgAppMgtServiceInterface, func() error, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	configFilePath := path.Join(home, constants.DeploymentConfigPath)
	cfg, err := config.LoadConfig(configFilePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configurations: %w", err)
	}
	if err := config.InitializeRuntime(home, cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize runtime: %w", err)
	}

	appService, err := application.Initialize()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize application service: %w", err)
	}
	logger.Debug("Initialized services", log.String("home", home))

	return orgapp.NewOrgAppMgtService(appService, provider.GetDBProvider()), appService.Close, nil
}

// writeJSON writes the value as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
