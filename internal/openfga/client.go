// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"
	"github.com/openfga/go-sdk/credentials"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
)

type Client struct {
	c OpenFGACoreClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) ListObjects(ctx context.Context, user, relation, objectType string) ([]string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ListObjects")
	defer span.End()

	r, err := c.c.ListObjects(ctx).Body(
		client.ClientListObjectsRequest{
			User:     user,
			Relation: relation,
			Type:     objectType,
		},
	).Execute()
	if err != nil {
		c.logger.Errorf("issue when listing objects: %s", err)
		c.dependencyDown()
		return nil, err
	}

	return r.GetObjects(), nil
}

func (c *Client) Check(ctx context.Context, user, relation, object string, tuples ...Tuple) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.Check")
	defer span.End()

	body := client.ClientCheckRequest{
		User:     user,
		Relation: relation,
		Object:   object,
	}

	if len(tuples) > 0 {
		ct := make([]client.ClientContextualTupleKey, 0, len(tuples))
		for _, t := range tuples {
			ct = append(ct, t.key())
		}
		body.ContextualTuples = ct
	}

	r, err := c.c.Check(ctx).Body(body).Execute()
	if err != nil {
		c.logger.Errorf("issue when checking %s %s %s: %s", user, relation, object, err)
		c.dependencyDown()
		return false, err
	}

	return r.GetAllowed(), nil
}

func (c *Client) ReadModel(ctx context.Context) (*fga.AuthorizationModel, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadModel")
	defer span.End()

	r, err := c.c.ReadAuthorizationModel(ctx).Execute()
	if err != nil {
		c.logger.Errorf("issue when reading the authorization model: %s", err)
		return nil, err
	}

	if r.AuthorizationModel == nil {
		return nil, fmt.Errorf("authorization model not found")
	}

	return r.AuthorizationModel, nil
}

// CompareModel reports whether the stored model matches the provided one.
func (c *Client) CompareModel(ctx context.Context, model fga.AuthorizationModel) (bool, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CompareModel")
	defer span.End()

	current, err := c.ReadModel(ctx)
	if err != nil {
		return false, err
	}

	if current.SchemaVersion != model.SchemaVersion {
		c.logger.Errorf("invalid schema version: expected %s, got %s", model.SchemaVersion, current.SchemaVersion)
		return false, nil
	}

	a, err := json.Marshal(current.TypeDefinitions)
	if err != nil {
		return false, err
	}

	b, err := json.Marshal(model.TypeDefinitions)
	if err != nil {
		return false, err
	}

	return bytes.Equal(a, b), nil
}

func (c *Client) WriteModel(ctx context.Context, model *client.ClientWriteAuthorizationModelRequest) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteModel")
	defer span.End()

	r, err := c.c.WriteAuthorizationModel(ctx).Body(*model).Execute()
	if err != nil {
		c.logger.Errorf("issue when writing the authorization model: %s", err)
		return "", err
	}

	return r.GetAuthorizationModelId(), nil
}

func (c *Client) CreateStore(ctx context.Context, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.CreateStore")
	defer span.End()

	r, err := c.c.CreateStore(ctx).Body(client.ClientCreateStoreRequest{Name: name}).Execute()
	if err != nil {
		c.logger.Errorf("issue when creating store %s: %s", name, err)
		return "", err
	}

	return r.GetId(), nil
}

func (c *Client) SetStoreID(ctx context.Context, storeID string) error {
	_, span := c.tracer.Start(ctx, "openfga.Client.SetStoreID")
	defer span.End()

	return c.c.SetStoreId(storeID)
}

// ReadTuples returns one page of tuples matching the filter, empty values match anything.
func (c *Client) ReadTuples(ctx context.Context, user, relation, object, continuationToken string) (*client.ClientReadResponse, error) {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.ReadTuples")
	defer span.End()

	body := client.ClientReadRequest{}
	if user != "" {
		body.User = &user
	}
	if relation != "" {
		body.Relation = &relation
	}
	if object != "" {
		body.Object = &object
	}

	options := client.ClientReadOptions{}
	if continuationToken != "" {
		options.ContinuationToken = &continuationToken
	}

	r, err := c.c.Read(ctx).Body(body).Options(options).Execute()
	if err != nil {
		c.logger.Errorf("issue when reading tuples: %s", err)
		return nil, err
	}

	return r, nil
}

func (c *Client) WriteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuple")
	defer span.End()

	return c.WriteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) WriteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.WriteTuples")
	defer span.End()

	if len(tuples) == 0 {
		return nil
	}

	body := make(client.ClientWriteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.key())
	}

	if _, err := c.c.WriteTuples(ctx).Body(body).Execute(); err != nil {
		c.logger.Errorf("issue when writing tuples %v: %s", tuples, err)
		return err
	}

	return nil
}

func (c *Client) DeleteTuple(ctx context.Context, user, relation, object string) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuple")
	defer span.End()

	return c.DeleteTuples(ctx, *NewTuple(user, relation, object))
}

func (c *Client) DeleteTuples(ctx context.Context, tuples ...Tuple) error {
	ctx, span := c.tracer.Start(ctx, "openfga.Client.DeleteTuples")
	defer span.End()

	if len(tuples) == 0 {
		return nil
	}

	body := make(client.ClientDeleteTuplesBody, 0, len(tuples))
	for _, t := range tuples {
		body = append(body, t.keyWithoutCondition())
	}

	if _, err := c.c.DeleteTuples(ctx).Body(body).Execute(); err != nil {
		c.logger.Errorf("issue when deleting tuples %v: %s", tuples, err)
		return err
	}

	return nil
}

func (c *Client) dependencyDown() {
	_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "openfga"}, 0)
}

func newClient(core OpenFGACoreClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	c := new(Client)

	c.c = core
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}

func NewClient(cfg *Config) *Client {
	fgaConfig := &client.ClientConfiguration{
		ApiUrl:               cfg.ApiURL(),
		StoreId:              cfg.StoreID,
		AuthorizationModelId: cfg.AuthModelID,
		Debug:                cfg.Debug,
	}

	if cfg.ApiToken != "" {
		fgaConfig.Credentials = &credentials.Credentials{
			Method: credentials.CredentialsMethodApiToken,
			Config: &credentials.Config{
				ApiToken: cfg.ApiToken,
			},
		}
	}

	core, err := client.NewSdkClient(fgaConfig)
	if err != nil {
		cfg.Logger.Fatalf("issue when setting up openfga client: %s", err)
	}

	return newClient(core, cfg.Tracer, cfg.Monitor, cfg.Logger)
}
