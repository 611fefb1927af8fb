package tradeoffanalyticsv1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/tidwall/gjson"

	"github.com/watson-developer-cloud/watson-go/internal/apijson"
	"github.com/watson-developer-cloud/watson-go/internal/param"
	"github.com/watson-developer-cloud/watson-go/internal/requestconfig"
	"github.com/watson-developer-cloud/watson-go/option"
)

// DilemmaService resolves decision problems.
//
// You should not instantiate this service directly, and instead use the
// [NewDilemmaService] method instead.
type DilemmaService struct {
	Options []option.RequestOption
}

// NewDilemmaService generates a new service that applies the given options
// to each request. These options are applied after the parent client's
// options (if there is one), and before any request-specific options.
func NewDilemmaService(opts ...option.RequestOption) (r *DilemmaService) {
	r = &DilemmaService{}
	r.Options = opts
	return
}

// New submits a decision problem and returns its resolution: the status of
// every option and, when requested, the map used to visualize the
// tradeoffs and the preferable options.
func (r *DilemmaService) New(ctx context.Context, body DilemmaNewParams, opts ...option.RequestOption) (res *Dilemma, err error) {
	opts = slices.Concat(r.Options, []option.RequestOption{analytics("dilemmas")}, opts)
	path := "v1/dilemmas"
	err = requestconfig.ExecuteNewRequest(ctx, http.MethodPost, path, body, &res, opts...)
	return
}

type Dilemma struct {
	Problem    Problem     `json:"problem,required"`
	Resolution Resolution  `json:"resolution,required"`
	JSON       dilemmaJSON `json:"-"`
}

// dilemmaJSON contains the JSON metadata for the struct [Dilemma]
type dilemmaJSON struct {
	Problem     apijson.Field
	Resolution  apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *Dilemma) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r dilemmaJSON) RawJSON() string {
	return r.raw
}

// Problem is a decision problem as echoed by the service.
type Problem struct {
	Subject string      `json:"subject,required"`
	Columns []Column    `json:"columns,required"`
	Options []Option    `json:"options,required"`
	JSON    problemJSON `json:"-"`
}

// problemJSON contains the JSON metadata for the struct [Problem]
type problemJSON struct {
	Subject     apijson.Field
	Columns     apijson.Field
	Options     apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *Problem) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r problemJSON) RawJSON() string {
	return r.raw
}

// Column is one criterion of a problem.
type Column struct {
	Key  string     `json:"key,required"`
	Type ColumnType `json:"type"`
	// Whether the column is an objective of the problem. Only objectives
	// take part in the resolution.
	IsObjective bool       `json:"is_objective"`
	Goal        ColumnGoal `json:"goal"`
	// The range of the column: {"low", "high"} for numeric and date
	// columns, a list of values for categorical ones.
	Range             any        `json:"range"`
	Preference        []string   `json:"preference"`
	SignificantGain   float64    `json:"significant_gain"`
	SignificantLoss   float64    `json:"significant_loss"`
	InsignificantLoss float64    `json:"insignificant_loss"`
	Format            string     `json:"format"`
	FullName          string     `json:"full_name"`
	Description       string     `json:"description"`
	JSON              columnJSON `json:"-"`
}

// columnJSON contains the JSON metadata for the struct [Column]
type columnJSON struct {
	Key               apijson.Field
	Type              apijson.Field
	IsObjective       apijson.Field
	Goal              apijson.Field
	Range             apijson.Field
	Preference        apijson.Field
	SignificantGain   apijson.Field
	SignificantLoss   apijson.Field
	InsignificantLoss apijson.Field
	Format            apijson.Field
	FullName          apijson.Field
	Description       apijson.Field
	raw               string
	ExtraFields       map[string]apijson.Field
}

func (r *Column) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r columnJSON) RawJSON() string {
	return r.raw
}

type ColumnType string

const (
	ColumnTypeNumeric     ColumnType = "numeric"
	ColumnTypeCategorical ColumnType = "categorical"
	ColumnTypeDatetime    ColumnType = "datetime"
	ColumnTypeText        ColumnType = "text"
)

func (r ColumnType) IsKnown() bool {
	switch r {
	case ColumnTypeNumeric, ColumnTypeCategorical, ColumnTypeDatetime, ColumnTypeText:
		return true
	}
	return false
}

type ColumnGoal string

const (
	ColumnGoalMin ColumnGoal = "min"
	ColumnGoalMax ColumnGoal = "max"
)

func (r ColumnGoal) IsKnown() bool {
	switch r {
	case ColumnGoalMin, ColumnGoalMax:
		return true
	}
	return false
}

// Option is one alternative of a problem.
type Option struct {
	Key string `json:"key,required"`
	// The option's value for each column, keyed by column key.
	Values          map[string]any `json:"values,required"`
	Name            string         `json:"name"`
	DescriptionHTML string         `json:"description_html"`
	AppData         map[string]any `json:"app_data"`
	JSON            optionJSON     `json:"-"`
}

// optionJSON contains the JSON metadata for the struct [Option]
type optionJSON struct {
	Key             apijson.Field
	Values          apijson.Field
	Name            apijson.Field
	DescriptionHTML apijson.Field
	AppData         apijson.Field
	raw             string
	ExtraFields     map[string]apijson.Field
}

func (r *Option) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r optionJSON) RawJSON() string {
	return r.raw
}

type Resolution struct {
	Solutions []Solution `json:"solutions,required"`
	// The two-dimensional map of the front options. Only returned when
	// generate_visualization is set; its layout is opaque to clients.
	Map                 map[string]any      `json:"map"`
	PreferableSolutions PreferableSolutions `json:"preferable_solutions"`
	JSON                resolutionJSON      `json:"-"`
}

// resolutionJSON contains the JSON metadata for the struct [Resolution]
type resolutionJSON struct {
	Solutions           apijson.Field
	Map                 apijson.Field
	PreferableSolutions apijson.Field
	raw                 string
	ExtraFields         map[string]apijson.Field
}

func (r *Resolution) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r resolutionJSON) RawJSON() string {
	return r.raw
}

// Front returns the keys of the options on the Pareto front, in response
// order.
func (r Resolution) Front() []string {
	var keys []string
	for _, s := range r.Solutions {
		if s.Status == SolutionStatusFront {
			keys = append(keys, s.SolutionRef)
		}
	}
	return keys
}

type Solution struct {
	// The key of the option this solution refers to.
	SolutionRef string         `json:"solution_ref,required"`
	Status      SolutionStatus `json:"status,required"`
	StatusCause StatusCause    `json:"status_cause"`
	// Keys of the options that dominate this one only because of the
	// tolerances set with significant_gain and significant_loss.
	ShadowMe []string     `json:"shadow_me"`
	Shadows  []string     `json:"shadows"`
	JSON     solutionJSON `json:"-"`
}

// solutionJSON contains the JSON metadata for the struct [Solution]
type solutionJSON struct {
	SolutionRef apijson.Field
	Status      apijson.Field
	StatusCause apijson.Field
	ShadowMe    apijson.Field
	Shadows     apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *Solution) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r solutionJSON) RawJSON() string {
	return r.raw
}

type SolutionStatus string

const (
	SolutionStatusFront                 SolutionStatus = "FRONT"
	SolutionStatusExcluded              SolutionStatus = "EXCLUDED"
	SolutionStatusIncomplete            SolutionStatus = "INCOMPLETE"
	SolutionStatusDoesNotMeetPreference SolutionStatus = "DOES_NOT_MEET_PREFERENCE"
)

func (r SolutionStatus) IsKnown() bool {
	switch r {
	case SolutionStatusFront, SolutionStatusExcluded, SolutionStatusIncomplete, SolutionStatusDoesNotMeetPreference:
		return true
	}
	return false
}

// StatusCause explains why a solution is not on the front.
type StatusCause struct {
	Message   string               `json:"message"`
	ErrorCode StatusCauseErrorCode `json:"error_code"`
	Tokens    []string             `json:"tokens"`
	JSON      statusCauseJSON      `json:"-"`
}

// statusCauseJSON contains the JSON metadata for the struct [StatusCause]
type statusCauseJSON struct {
	Message     apijson.Field
	ErrorCode   apijson.Field
	Tokens      apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *StatusCause) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r statusCauseJSON) RawJSON() string {
	return r.raw
}

type StatusCauseErrorCode string

const (
	StatusCauseErrorCodeRangeMismatch         StatusCauseErrorCode = "RANGE_MISMATCH"
	StatusCauseErrorCodeSpecMismatch          StatusCauseErrorCode = "SPEC_MISMATCH"
	StatusCauseErrorCodeMissingObjectiveValue StatusCauseErrorCode = "MISSING_OBJECTIVE_VALUE"
	StatusCauseErrorCodeDoesNotMeetPreference StatusCauseErrorCode = "DOES_NOT_MEET_PREFERENCE"
)

func (r StatusCauseErrorCode) IsKnown() bool {
	switch r {
	case StatusCauseErrorCodeRangeMismatch, StatusCauseErrorCodeSpecMismatch,
		StatusCauseErrorCodeMissingObjectiveValue, StatusCauseErrorCodeDoesNotMeetPreference:
		return true
	}
	return false
}

type PreferableSolutions struct {
	SolutionRefs []string                `json:"solution_refs"`
	Score        float64                 `json:"score"`
	JSON         preferableSolutionsJSON `json:"-"`
}

// preferableSolutionsJSON contains the JSON metadata for the struct
// [PreferableSolutions]
type preferableSolutionsJSON struct {
	SolutionRefs apijson.Field
	Score        apijson.Field
	raw          string
	ExtraFields  map[string]apijson.Field
}

func (r *PreferableSolutions) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r preferableSolutionsJSON) RawJSON() string {
	return r.raw
}

// DilemmaNewParams is the decision problem to resolve.
type DilemmaNewParams struct {
	Subject param.Field[string]        `json:"subject,required"`
	Columns param.Field[[]ColumnParam] `json:"columns,required" validate:"min=1"`
	Options param.Field[[]OptionParam] `json:"options,required"`
	// Whether to compute the map used to visualize the front. Defaults to
	// true on the service.
	GenerateVisualization param.Field[bool] `query:"generate_visualization"`
	// Whether to compute the preferable options among the front.
	FindPreferableOptions param.Field[bool] `query:"find_preferable_options"`
}

func (r DilemmaNewParams) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// URLQuery serializes [DilemmaNewParams]'s query parameters as
// `url.Values`.
func (r DilemmaNewParams) URLQuery() (v url.Values) {
	return urlQuery(r)
}

type ColumnParam struct {
	Key         param.Field[string]                `json:"key,required"`
	Type        param.Field[ColumnType]            `json:"type"`
	IsObjective param.Field[bool]                  `json:"is_objective"`
	Goal        param.Field[ColumnGoal]            `json:"goal"`
	Range       param.Field[ColumnRangeUnionParam] `json:"range"`
	// For categorical columns, the values in order of preference.
	Preference        param.Field[[]string] `json:"preference"`
	SignificantGain   param.Field[float64]  `json:"significant_gain" validate:"gte=0,lte=1"`
	SignificantLoss   param.Field[float64]  `json:"significant_loss" validate:"gte=0,lte=1"`
	InsignificantLoss param.Field[float64]  `json:"insignificant_loss" validate:"gte=0,lte=1"`
	Format            param.Field[string]   `json:"format"`
	FullName          param.Field[string]   `json:"full_name"`
	Description       param.Field[string]   `json:"description"`
}

func (r ColumnParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// UnmarshalJSON loads a column from a problem document, picking the range
// variant from the shape of the "range" value.
func (r *ColumnParam) UnmarshalJSON(data []byte) error {
	type plain ColumnParam
	aux := struct {
		*plain
		Range json.RawMessage `json:"range"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Range == nil {
		return nil
	}
	rng := gjson.ParseBytes(aux.Range)
	switch {
	case rng.Type == gjson.Null:
		r.Range = param.Null[ColumnRangeUnionParam]()
	case rng.IsArray():
		var values ColumnRangeCategoricalParam
		if err := json.Unmarshal(aux.Range, &values); err != nil {
			return err
		}
		r.Range = param.F[ColumnRangeUnionParam](values)
	case rng.Get("low").Type == gjson.String:
		var dates ColumnRangeDateParam
		if err := json.Unmarshal(aux.Range, &dates); err != nil {
			return err
		}
		r.Range = param.F[ColumnRangeUnionParam](dates)
	default:
		var numbers ColumnRangeNumericParam
		if err := json.Unmarshal(aux.Range, &numbers); err != nil {
			return err
		}
		r.Range = param.F[ColumnRangeUnionParam](numbers)
	}
	return nil
}

// ColumnRangeUnionParam is the range of a column. Satisfied by
// [ColumnRangeNumericParam], [ColumnRangeDateParam] and
// [ColumnRangeCategoricalParam].
type ColumnRangeUnionParam interface {
	implementsColumnRangeUnionParam()
}

type ColumnRangeNumericParam struct {
	Low  param.Field[float64] `json:"low,required"`
	High param.Field[float64] `json:"high,required"`
}

func (r ColumnRangeNumericParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

func (ColumnRangeNumericParam) implementsColumnRangeUnionParam() {}

type ColumnRangeDateParam struct {
	Low  param.Field[time.Time] `json:"low,required" format:"date-time"`
	High param.Field[time.Time] `json:"high,required" format:"date-time"`
}

func (r ColumnRangeDateParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

func (ColumnRangeDateParam) implementsColumnRangeUnionParam() {}

// ColumnRangeCategoricalParam lists the values a categorical column may
// take.
type ColumnRangeCategoricalParam []string

func (ColumnRangeCategoricalParam) implementsColumnRangeUnionParam() {}

type OptionParam struct {
	Key             param.Field[string]         `json:"key,required"`
	Values          param.Field[map[string]any] `json:"values,required"`
	Name            param.Field[string]         `json:"name"`
	DescriptionHTML param.Field[string]         `json:"description_html"`
	AppData         param.Field[map[string]any] `json:"app_data"`
}

func (r OptionParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}
