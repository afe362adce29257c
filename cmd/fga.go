// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/openfga/go-sdk/client"
	"github.com/spf13/cobra"
	corev1 "k8s.io/api/core/v1"
	k8serrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/canonical/brokerage-service/internal/authorization"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/openfga"
	"github.com/canonical/brokerage-service/internal/tracing"
)

const (
	fgaStoreName    = "brokerage-service"
	fgaModelVersion = "v0"

	configMapStoreKey = "OPENFGA_STORE_ID"
	configMapModelKey = "OPENFGA_AUTHORIZATION_MODEL_ID"
)

type fgaModelOutput struct {
	StoreID string `json:"store_id"`
	ModelID string `json:"model_id"`
}

var fgaCmd = &cobra.Command{
	Use:   "fga",
	Short: "Manage the OpenFGA store backing role memberships",
}

var fgaModelCmd = &cobra.Command{
	Use:   "create-model",
	Short: "Write the brokerage authorization model, creating the store if needed",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, _ := cmd.Flags().GetString("fga-api-url")
		apiToken, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		format, _ := cmd.Flags().GetString("format")
		verbose, _ := cmd.Flags().GetBool("verbose")
		configMap, _ := cmd.Flags().GetString("store-k8s-configmap-resource")
		kubeconfig, _ := cmd.Flags().GetString("kubeconfig")

		out, err := writeModel(cmd.Context(), apiURL, apiToken, storeID, verbose)
		if err != nil {
			return err
		}

		if configMap != "" {
			if err := publishModelConfigMap(cmd.Context(), kubeconfig, configMap, out); err != nil {
				return fmt.Errorf("failed to update configmap: %w", err)
			}
			cmd.PrintErrf("configmap %s updated\n", configMap)
		}

		if format == "json" {
			return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
		}

		if storeID == "" {
			cmd.Printf("Created store: %s\n", out.StoreID)
		}
		cmd.Printf("Created model: %s\n", out.ModelID)

		return nil
	},
}

func init() {
	fgaModelCmd.Flags().String("fga-api-url", "", "The openfga API URL")
	fgaModelCmd.Flags().String("fga-api-token", "", "The openfga API token")
	fgaModelCmd.Flags().String("fga-store-id", "", "The openfga store to write the model to, created when empty")
	fgaModelCmd.Flags().String("format", "text", "Output format (text or json)")
	fgaModelCmd.Flags().BoolP("verbose", "v", false, "Enable openfga client debug output")
	fgaModelCmd.Flags().String("store-k8s-configmap-resource", "", "ConfigMap receiving the store and model ids, format: namespace/name")
	fgaModelCmd.Flags().String("kubeconfig", "", "Path to the kubeconfig file, in-cluster config when empty")
	_ = fgaModelCmd.MarkFlagRequired("fga-api-url")
	_ = fgaModelCmd.MarkFlagRequired("fga-api-token")

	fgaCmd.AddCommand(fgaModelCmd)
	rootCmd.AddCommand(fgaCmd)
}

func newFGAClient(apiURL, apiToken, storeID, modelID string, verbose bool) (*openfga.Client, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse url: %w", err)
	}

	logger := logging.NewNoopLogger()

	return openfga.NewClient(
		openfga.NewConfig(
			u.Scheme,
			u.Host,
			storeID,
			apiToken,
			modelID,
			verbose,
			tracing.NewNoopTracer(),
			monitoring.NewNoopMonitor(fgaStoreName),
			logger,
		),
	), nil
}

func writeModel(ctx context.Context, apiURL, apiToken, storeID string, verbose bool) (*fgaModelOutput, error) {
	fga, err := newFGAClient(apiURL, apiToken, storeID, "", verbose)
	if err != nil {
		return nil, err
	}

	if storeID == "" {
		if storeID, err = fga.CreateStore(ctx, fgaStoreName); err != nil {
			return nil, fmt.Errorf("failed to create store: %w", err)
		}

		if err := fga.SetStoreID(ctx, storeID); err != nil {
			return nil, fmt.Errorf("failed to select store %s: %w", storeID, err)
		}
	}

	model := authorization.NewAuthorizationModelProvider(fgaModelVersion).GetModel()
	if model == nil {
		return nil, fmt.Errorf("authorization model %s is not embedded", fgaModelVersion)
	}

	modelID, err := fga.WriteModel(
		ctx,
		&client.ClientWriteAuthorizationModelRequest{
			TypeDefinitions: model.TypeDefinitions,
			SchemaVersion:   model.SchemaVersion,
			Conditions:      model.Conditions,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to write model: %w", err)
	}

	return &fgaModelOutput{StoreID: storeID, ModelID: modelID}, nil
}

func kubeConfig(path string) (*rest.Config, error) {
	if path != "" {
		return clientcmd.BuildConfigFromFlags("", path)
	}

	if config, err := rest.InClusterConfig(); err == nil {
		return config, nil
	}

	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		clientcmd.NewDefaultClientConfigLoadingRules(),
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
}

func publishModelConfigMap(ctx context.Context, kubeconfig, resource string, out *fgaModelOutput) error {
	namespace, name, ok := strings.Cut(resource, "/")
	if !ok || namespace == "" || name == "" {
		return fmt.Errorf("invalid configmap resource %q, expected namespace/name", resource)
	}

	config, err := kubeConfig(kubeconfig)
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	configMaps := clientset.CoreV1().ConfigMaps(namespace)

	cm, err := configMaps.Get(ctx, name, metav1.GetOptions{})
	if k8serrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
			Data: map[string]string{
				configMapStoreKey: out.StoreID,
				configMapModelKey: out.ModelID,
			},
		}

		if _, err := configMaps.Create(ctx, cm, metav1.CreateOptions{}); err != nil {
			return fmt.Errorf("failed to create configmap %s: %w", resource, err)
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to get configmap %s: %w", resource, err)
	}

	if cm.Data == nil {
		cm.Data = make(map[string]string)
	}

	cm.Data[configMapStoreKey] = out.StoreID
	cm.Data[configMapModelKey] = out.ModelID

	if _, err := configMaps.Update(ctx, cm, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("failed to update configmap %s: %w", resource, err)
	}

	return nil
}
