// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	"github.com/openfga/go-sdk/client"
)

// OpenFGACoreClientInterface is the subset of the go-sdk client used by Client.
type OpenFGACoreClientInterface interface {
	Check(context.Context) client.SdkClientCheckRequestInterface
	ListObjects(context.Context) client.SdkClientListObjectsRequestInterface
	Read(context.Context) client.SdkClientReadRequestInterface
	WriteTuples(context.Context) client.SdkClientWriteTuplesRequestInterface
	DeleteTuples(context.Context) client.SdkClientDeleteTuplesRequestInterface
	ReadAuthorizationModel(context.Context) client.SdkClientReadAuthorizationModelRequestInterface
	WriteAuthorizationModel(context.Context) client.SdkClientWriteAuthorizationModelRequestInterface
	CreateStore(context.Context) client.SdkClientCreateStoreRequestInterface
	SetStoreId(string) error
}
