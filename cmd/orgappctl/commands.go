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
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asgardeo/orgappmgt/internal/orgapp"
	"github.com/asgardeo/orgappmgt/internal/system/constants"
	"github.com/asgardeo/orgappmgt/internal/system/database/model"
)

var queryCheckIdentityDB = model.DBQuery{
	ID:    "ORGAPP-00001",
	Query: "SELECT 1 AS STATUS",
}

type systemAppResult struct {
	Name              string `json:"name"`
	SystemApplication bool   `json:"system_application"`
}

type dbCheckResult struct {
	Datasource string `json:"datasource"`
	Status     string `json:"status"`
}

func newSystemAppCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "system-app NAME",
		Short: "Check whether an application is a system application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := c.orgAppService()
			if err != nil {
				return err
			}
			isSystem, err := service.IsSystemApplication(args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), systemAppResult{Name: args[0], SystemApplication: isSystem})
		},
	}
}

func newDefaultAuthCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "default-auth",
		Short: "Print the authentication configuration of the default service provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := c.orgAppService()
			if err != nil {
				return err
			}
			authConfig, err := service.GetDefaultAuthenticationConfig()
			if err != nil {
				return err
			}
			if authConfig == nil {
				return fmt.Errorf("default service provider not found in tenant %s", constants.SuperTenantDomainName)
			}
			return writeJSON(cmd.OutOrStdout(), authConfig)
		},
	}
}

func newOrgSSOIDPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "org-sso-idp",
		Short: "Print the identity provider used for organization SSO",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), orgapp.CreateOrganizationSSOIDP())
		},
	}
}

func newDBCheckCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "db-check",
		Short: "Check the connectivity of the identity database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, err := c.orgAppService()
			if err != nil {
				return err
			}
			dbClient, err := service.GetNewTemplate()
			if err != nil {
				return err
			}
			if _, err := dbClient.Query(queryCheckIdentityDB); err != nil {
				return fmt.Errorf("failed to query the %s database: %w", constants.IdentityDBName, err)
			}
			return writeJSON(cmd.OutOrStdout(), dbCheckResult{Datasource: constants.IdentityDBName, Status: "ok"})
		},
	}
}
