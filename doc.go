// Package watson holds what the Watson API packages share: the param field
// helpers used to fill request params, and the error types every service
// method can return.
//
// Each API lives in its own package (assistantv1, assistantv2, discoveryv2,
// tradeoffanalyticsv1) with a NewService constructor:
//
//	svc := assistantv1.NewService(option.WithAPIKey(os.Getenv("ASSISTANT_APIKEY")))
//	res, err := svc.Workspaces.Update(ctx, workspaceID, assistantv1.WorkspaceUpdateParams{
//		Name: watson.F("testString"),
//	})
//
// Fields left unset are not sent; watson.Null sends an explicit null.
package watson
