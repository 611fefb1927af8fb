package assistantv1_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watson-developer-cloud/watson-go"
	"github.com/watson-developer-cloud/watson-go/assistantv1"
	"github.com/watson-developer-cloud/watson-go/internal/testutil"
)

const dialogNodeBody = `{
	"dialog_node": "order",
	"title": "Order",
	"conditions": "#order",
	"parent": "root",
	"type": "standard",
	"output": {
		"generic": [
			{"response_type": "text", "selection_policy": "random", "values": [{"text": "Which size?"}, {"text": "What size would you like?"}]},
			{"response_type": "option", "title": "Size", "options": [{"label": "Large", "value": {"input": {"text": "large"}}}]}
		]
	},
	"actions": [{"name": "lookup", "type": "webhook", "result_variable": "webhook_result_1", "parameters": {"size": "large"}}],
	"next_step": {"behavior": "skip_user_input"},
	"digress_in": "returns",
	"disambiguation_opt_out": true,
	"created": "2021-06-14T10:00:00Z"
}`

func TestDialogNodeUpdatePatch(t *testing.T) {
	params := assistantv1.DialogNodeUpdateParams{
		Title:                watson.F("Order"),
		Conditions:           watson.Null[string](),
		DisambiguationOptOut: watson.F(false),
		NextStep: watson.F(assistantv1.DialogNodeNextStepParam{
			Behavior:   watson.F(assistantv1.DialogNodeNextStepBehaviorJumpTo),
			DialogNode: watson.F("checkout"),
		}),
	}
	patch := params.AsPatch()
	assert.Equal(t, []string{"conditions", "next_step", "title", "disambiguation_opt_out"}, patch.Keys())

	b, err := json.Marshal(patch)
	require.NoError(t, err)
	assert.Equal(t, `{"conditions":null,"next_step":{"behavior":"jump_to","dialog_node":"checkout"},"title":"Order","disambiguation_opt_out":false}`, string(b))
}

func TestDialogNodeService(t *testing.T) {
	srv := testutil.NewMockServer(t).WithOpenAPI(assistantDocument())
	srv.Handle(http.MethodGet, "/v1/workspaces/{workspace_id}/dialog_nodes", http.StatusOK,
		`{"dialog_nodes": [`+dialogNodeBody+`], "pagination": {"refresh_url": "/v1/workspaces/ws-1/dialog_nodes"}}`)
	srv.Handle(http.MethodPost, "/v1/workspaces/{workspace_id}/dialog_nodes", http.StatusCreated, dialogNodeBody)
	srv.Handle(http.MethodGet, "/v1/workspaces/{workspace_id}/dialog_nodes/{dialog_node}", http.StatusOK, dialogNodeBody)
	srv.Handle(http.MethodPost, "/v1/workspaces/{workspace_id}/dialog_nodes/{dialog_node}", http.StatusOK, dialogNodeBody)
	srv.Handle(http.MethodDelete, "/v1/workspaces/{workspace_id}/dialog_nodes/{dialog_node}", http.StatusOK, "")
	svc := newService(t, srv)
	ctx := context.Background()

	list, err := svc.DialogNodes.List(ctx, "ws-1", assistantv1.DialogNodeListParams{
		Sort: watson.F(assistantv1.ListSortDialogNode),
	})
	require.NoError(t, err)
	require.Len(t, list.DialogNodes, 1)
	node := list.DialogNodes[0]
	assert.Equal(t, assistantv1.DialogNodeOutputGenericSelectionPolicyRandom, node.Output.Generic[0].SelectionPolicy)
	assert.Equal(t, "What size would you like?", node.Output.Generic[0].Values[1].Text)
	assert.Equal(t, "large", node.Output.Generic[1].Options[0].Value.Input.Text)
	assert.Equal(t, assistantv1.DialogNodeActionTypeWebhook, node.Actions[0].Type)
	assert.Equal(t, assistantv1.DialogNodeDigressInReturns, node.DigressIn)
	assert.True(t, node.DisambiguationOptOut)
	assert.True(t, node.JSON.DigressOut.IsMissing())

	_, err = svc.DialogNodes.New(ctx, "ws-1", assistantv1.DialogNodeNewParams{
		DialogNodeParam: assistantv1.DialogNodeParam{
			DialogNode: watson.F("order"),
			Conditions: watson.F("#order"),
			Output: watson.F(assistantv1.DialogNodeOutputParam{
				Generic: watson.F([]assistantv1.DialogNodeOutputGenericParam{{
					ResponseType: watson.F(assistantv1.DialogNodeOutputGenericResponseTypeText),
					Values: watson.F([]assistantv1.DialogNodeOutputTextValuesElementParam{
						{Text: watson.F("Which size?")},
					}),
				}}),
				ExtraFields: map[string]any{"custom": "value"},
			}),
		},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"dialog_node": "order",
		"conditions": "#order",
		"output": {
			"generic": [{"response_type": "text", "values": [{"text": "Which size?"}]}],
			"custom": "value"
		}
	}`, string(srv.LastRequest().Body))

	got, err := svc.DialogNodes.Get(ctx, "ws-1", "order", assistantv1.DialogNodeGetParams{})
	require.NoError(t, err)
	assert.Equal(t, "root", got.Parent)

	_, err = svc.DialogNodes.Update(ctx, "ws-1", "order", assistantv1.DialogNodeUpdateParams{
		UserLabel: watson.F("Order a pizza"),
	})
	require.NoError(t, err)
	assert.Equal(t, `{"user_label":"Order a pizza"}`, string(srv.LastRequest().Body))

	require.NoError(t, svc.DialogNodes.Delete(ctx, "ws-1", "order"))
	assert.Equal(t, "/v1/workspaces/ws-1/dialog_nodes/order", srv.LastRequest().Path)

	for _, req := range srv.Requests() {
		assert.Empty(t, req.Invalid, "%s %s", req.Method, req.Path)
	}
}

func TestDialogNodeNewValidation(t *testing.T) {
	err := watson.Validate(assistantv1.DialogNodeNewParams{
		DialogNodeParam: assistantv1.DialogNodeParam{
			DialogNode: watson.F("order"),
			Actions: watson.F([]assistantv1.DialogNodeActionParam{
				{Name: watson.F("lookup")},
			}),
			NextStep: watson.F(assistantv1.DialogNodeNextStepParam{}),
		},
	})
	var verr *watson.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []watson.Violation{
		{Field: "next_step.behavior", Rule: "required"},
		{Field: "actions[0].result_variable", Rule: "required"},
	}, verr.Violations)
}

func TestDialogNodeRoundTrip(t *testing.T) {
	var original assistantv1.DialogNode
	require.NoError(t, json.Unmarshal([]byte(dialogNodeBody), &original))
	b, err := json.Marshal(original)
	require.NoError(t, err)
	var decoded assistantv1.DialogNode
	require.NoError(t, json.Unmarshal(b, &decoded))
	if diff := cmp.Diff(original, decoded, ignoreMeta); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
