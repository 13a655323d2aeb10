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
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	appmodel "github.com/asgardeo/orgappmgt/internal/application/model"
	"github.com/asgardeo/orgappmgt/internal/orgapp"
	"github.com/asgardeo/orgappmgt/internal/system/log"
)

// sharingStatus is the sharing metadata of a service provider.
type sharingStatus struct {
	Name                          string `json:"name"`
	ShareWithAllChildren          bool   `json:"share_with_all_children"`
	ShareWithAllChildrenAvailable bool   `json:"share_with_all_children_available"`
	IsAppShared                   bool   `json:"is_app_shared"`
	RoleSharingMode               string `json:"role_sharing_mode"`
}

func newServiceProviderCommand(c *cli) *cobra.Command {
	spCmd := &cobra.Command{
		Use:   "sp",
		Short: "Manage the sharing metadata of a service provider file",
	}
	spCmd.AddCommand(newShareCommand(c))
	spCmd.AddCommand(newUnshareCommand())
	spCmd.AddCommand(newRoleModeCommand())
	spCmd.AddCommand(newSharedCommand())
	return spCmd
}

func newShareCommand(c *cli) *cobra.Command {
	var allChildren bool
	var mode string

	cmd := &cobra.Command{
		Use:   "share FILE",
		Short: "Mark a service provider as shared",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := readServiceProviderFile(args[0])
			if err != nil {
				return err
			}

			service, err := c.orgAppService()
			if err != nil {
				return err
			}
			isSystem, err := service.IsSystemApplication(sp.Name)
			if err != nil {
				return err
			}
			if isSystem {
				return orgapp.HandleClientError(orgapp.ErrorSystemApplicationSharing)
			}

			if cmd.Flags().Changed("mode") {
				roleSharingMode, err := parseRoleSharingMode(mode)
				if err != nil {
					return err
				}
				orgapp.SetAppAssociatedRoleSharingMode(sp, roleSharingMode)
			}
			orgapp.SetShareWithAllChildrenProperty(sp, allChildren)
			orgapp.SetIsAppSharedProperty(sp, true)

			return saveAndPrint(cmd, args[0], sp)
		},
	}
	cmd.Flags().BoolVar(&allChildren, "all-children", false, "Share the application with all child organizations")
	cmd.Flags().StringVar(&mode, "mode", "", "Role sharing mode (ALL, SELECTED or NONE)")
	return cmd
}

func newUnshareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unshare FILE",
		Short: "Remove the sharing metadata of a service provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := readServiceProviderFile(args[0])
			if err != nil {
				return err
			}
			if !orgapp.IsAppShared(sp.Properties) &&
				!orgapp.IsShareWithAllChildrenPropertyAvailable(sp.Properties) {
				clientErr := orgapp.HandleClientError(orgapp.ErrorApplicationNotShared)
				clientErr.Description = fmt.Sprintf(clientErr.Description, sp.Name)
				return clientErr
			}

			orgapp.RemoveShareWithAllChildrenProperty(sp)
			orgapp.SetIsAppSharedProperty(sp, false)

			return saveAndPrint(cmd, args[0], sp)
		},
	}
}

func newRoleModeCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "role-mode FILE",
		Short: "Print or set the role sharing mode of a service provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := readServiceProviderFile(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("set") {
				roleSharingMode, err := parseRoleSharingMode(mode)
				if err != nil {
					return err
				}
				orgapp.SetAppAssociatedRoleSharingMode(sp, roleSharingMode)
				return saveAndPrint(cmd, args[0], sp)
			}

			status, err := buildSharingStatus(sp)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), status.RoleSharingMode)
			return err
		},
	}
	cmd.Flags().StringVar(&mode, "set", "", "Role sharing mode to store (ALL, SELECTED or NONE)")
	return cmd
}

func newSharedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "shared FILE",
		Short: "Print the sharing metadata of a service provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sp, err := readServiceProviderFile(args[0])
			if err != nil {
				return err
			}
			status, err := buildSharingStatus(sp)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), status)
		},
	}
}

func buildSharingStatus(sp *appmodel.ServiceProvider) (sharingStatus, error) {
	mode, err := orgapp.GetAppAssociatedRoleSharingMode(sp)
	if err != nil {
		return sharingStatus{}, orgapp.HandleServerError(orgapp.ErrorResolvingRoleSharingMode, err, sp.Name)
	}
	return sharingStatus{
		Name:                          sp.Name,
		ShareWithAllChildren:          orgapp.IsShareWithAllChildren(sp.Properties),
		ShareWithAllChildrenAvailable: orgapp.IsShareWithAllChildrenPropertyAvailable(sp.Properties),
		IsAppShared:                   orgapp.IsAppShared(sp.Properties),
		RoleSharingMode:               mode.String(),
	}, nil
}

func parseRoleSharingMode(value string) (orgapp.RoleSharingMode, error) {
	mode, err := orgapp.ParseRoleSharingMode(value)
	if err != nil {
		clientErr := orgapp.HandleClientError(orgapp.ErrorUnsupportedRoleSharingMode)
		clientErr.Description = fmt.Sprintf(clientErr.Description, value)
		return "", clientErr
	}
	return mode, nil
}

func readServiceProviderFile(filePath string) (*appmodel.ServiceProvider, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read service provider file %s: %w", filePath, err)
	}
	var sp appmodel.ServiceProvider
	if err := yaml.Unmarshal(data, &sp); err != nil {
		return nil, fmt.Errorf("failed to parse service provider file %s: %w", filePath, err)
	}
	if sp.Name == "" {
		clientErr := orgapp.HandleClientError(orgapp.ErrorInvalidApplication)
		clientErr.Description = fmt.Sprintf(clientErr.Description, filePath)
		return nil, clientErr
	}
	return &sp, nil
}

func saveAndPrint(cmd *cobra.Command, filePath string, sp *appmodel.ServiceProvider) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName),
		log.String(log.LoggerKeyApplicationName, sp.Name))

	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("failed to stat service provider file %s: %w", filePath, err)
	}
	data, err := yaml.Marshal(sp)
	if err != nil {
		return fmt.Errorf("failed to encode service provider %s: %w", sp.Name, err)
	}
	if err := os.WriteFile(filePath, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write service provider file %s: %w", filePath, err)
	}
	logger.Debug("Updated service provider sharing metadata", log.String("file", filePath))

	status, err := buildSharingStatus(sp)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), status)
}
