package discoveryv2

import (
	"github.com/watson-developer-cloud/watson-go/internal/apijson"
	"github.com/watson-developer-cloud/watson-go/internal/param"
)

type QueryParams struct {
	// Collections to query. Defaults to every collection of the project.
	CollectionIDs param.Field[[]string] `json:"collection_ids"`
	// A query filter, in the Discovery Query Language, that narrows the
	// documents searched without affecting their scores.
	Filter param.Field[string] `json:"filter"`
	// A query search, in the Discovery Query Language, that returns the
	// documents that are most relevant.
	Query                param.Field[string] `json:"query"`
	NaturalLanguageQuery param.Field[string] `json:"natural_language_query" validate:"max=2048"`
	Aggregation          param.Field[string] `json:"aggregation"`
	// Number of results to return.
	Count  param.Field[int64]    `json:"count" validate:"gte=0"`
	Return param.Field[[]string] `json:"return"`
	// The number of results to skip, for paging.
	Offset               param.Field[int64]                          `json:"offset" validate:"gte=0"`
	Sort                 param.Field[string]                         `json:"sort"`
	Highlight            param.Field[bool]                           `json:"highlight"`
	SpellingSuggestions  param.Field[bool]                           `json:"spelling_suggestions"`
	TableResults         param.Field[QueryTableResultsParam]         `json:"table_results"`
	SuggestedRefinements param.Field[QuerySuggestedRefinementsParam] `json:"suggested_refinements"`
	Passages             param.Field[QueryPassagesParam]             `json:"passages"`
}

func (r QueryParams) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type QueryTableResultsParam struct {
	Enabled param.Field[bool]  `json:"enabled"`
	Count   param.Field[int64] `json:"count" validate:"gte=0"`
}

func (r QueryTableResultsParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type QuerySuggestedRefinementsParam struct {
	Enabled param.Field[bool]  `json:"enabled"`
	Count   param.Field[int64] `json:"count" validate:"gte=1,lte=100"`
}

func (r QuerySuggestedRefinementsParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

// QueryPassagesParam configures the passages returned with the results.
type QueryPassagesParam struct {
	Enabled        param.Field[bool]     `json:"enabled"`
	PerDocument    param.Field[bool]     `json:"per_document"`
	MaxPerDocument param.Field[int64]    `json:"max_per_document" validate:"gte=1"`
	Fields         param.Field[[]string] `json:"fields"`
	Count          param.Field[int64]    `json:"count" validate:"gte=1,lte=400"`
	// The approximate number of characters that any one passage will
	// have.
	Characters param.Field[int64] `json:"characters" validate:"gte=50,lte=2000"`
}

func (r QueryPassagesParam) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type QueryResponse struct {
	// The number of matching results for the query.
	MatchingResults  int64            `json:"matching_results"`
	Results          []QueryResult    `json:"results"`
	Aggregations     []map[string]any `json:"aggregations"`
	RetrievalDetails RetrievalDetails `json:"retrieval_details"`
	// Suggested correction of the submitted natural_language_query.
	SuggestedQuery       string                     `json:"suggested_query"`
	SuggestedRefinements []QuerySuggestedRefinement `json:"suggested_refinements"`
	JSON                 queryResponseJSON          `json:"-"`
}

// queryResponseJSON contains the JSON metadata for the struct
// [QueryResponse]
type queryResponseJSON struct {
	MatchingResults      apijson.Field
	Results              apijson.Field
	Aggregations         apijson.Field
	RetrievalDetails     apijson.Field
	SuggestedQuery       apijson.Field
	SuggestedRefinements apijson.Field
	raw                  string
	ExtraFields          map[string]apijson.Field
}

func (r *QueryResponse) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r queryResponseJSON) RawJSON() string {
	return r.raw
}

// QueryResult is one matching document. Fields holds the document's own
// fields, such as "text" or "title", as returned by the service.
type QueryResult struct {
	DocumentID       string               `json:"document_id"`
	Metadata         map[string]any       `json:"metadata"`
	ResultMetadata   QueryResultMetadata  `json:"result_metadata"`
	DocumentPassages []QueryResultPassage `json:"document_passages"`
	Fields           map[string]any       `json:"-,extras"`
	JSON             queryResultJSON      `json:"-"`
}

// queryResultJSON contains the JSON metadata for the struct [QueryResult]
type queryResultJSON struct {
	DocumentID       apijson.Field
	Metadata         apijson.Field
	ResultMetadata   apijson.Field
	DocumentPassages apijson.Field
	raw              string
	ExtraFields      map[string]apijson.Field
}

func (r *QueryResult) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r queryResultJSON) RawJSON() string {
	return r.raw
}

func (r QueryResult) MarshalJSON() (data []byte, err error) {
	return apijson.MarshalRoot(r)
}

type QueryResultMetadata struct {
	DocumentRetrievalSource QueryResultMetadataDocumentRetrievalSource `json:"document_retrieval_source"`
	CollectionID            string                                     `json:"collection_id,required"`
	// The confidence score for the result, between 0 and 1.
	Confidence float64                 `json:"confidence"`
	JSON       queryResultMetadataJSON `json:"-"`
}

// queryResultMetadataJSON contains the JSON metadata for the struct
// [QueryResultMetadata]
type queryResultMetadataJSON struct {
	DocumentRetrievalSource apijson.Field
	CollectionID            apijson.Field
	Confidence              apijson.Field
	raw                     string
	ExtraFields             map[string]apijson.Field
}

func (r *QueryResultMetadata) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r queryResultMetadataJSON) RawJSON() string {
	return r.raw
}

type QueryResultMetadataDocumentRetrievalSource string

const (
	QueryResultMetadataDocumentRetrievalSourceSearch  QueryResultMetadataDocumentRetrievalSource = "search"
	QueryResultMetadataDocumentRetrievalSourceCurated QueryResultMetadataDocumentRetrievalSource = "curation"
)

func (r QueryResultMetadataDocumentRetrievalSource) IsKnown() bool {
	switch r {
	case QueryResultMetadataDocumentRetrievalSourceSearch, QueryResultMetadataDocumentRetrievalSourceCurated:
		return true
	}
	return false
}

type QueryResultPassage struct {
	PassageText string `json:"passage_text"`
	// Character offsets of the passage within Field.
	StartOffset int64                  `json:"start_offset"`
	EndOffset   int64                  `json:"end_offset"`
	Field       string                 `json:"field"`
	JSON        queryResultPassageJSON `json:"-"`
}

// queryResultPassageJSON contains the JSON metadata for the struct
// [QueryResultPassage]
type queryResultPassageJSON struct {
	PassageText apijson.Field
	StartOffset apijson.Field
	EndOffset   apijson.Field
	Field       apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *QueryResultPassage) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r queryResultPassageJSON) RawJSON() string {
	return r.raw
}

type RetrievalDetails struct {
	DocumentRetrievalStrategy RetrievalDetailsDocumentRetrievalStrategy `json:"document_retrieval_strategy"`
	JSON                      retrievalDetailsJSON                      `json:"-"`
}

// retrievalDetailsJSON contains the JSON metadata for the struct
// [RetrievalDetails]
type retrievalDetailsJSON struct {
	DocumentRetrievalStrategy apijson.Field
	raw                       string
	ExtraFields               map[string]apijson.Field
}

func (r *RetrievalDetails) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r retrievalDetailsJSON) RawJSON() string {
	return r.raw
}

type RetrievalDetailsDocumentRetrievalStrategy string

const (
	RetrievalDetailsDocumentRetrievalStrategyUntrained          RetrievalDetailsDocumentRetrievalStrategy = "untrained"
	RetrievalDetailsDocumentRetrievalStrategyRelevancyTraining  RetrievalDetailsDocumentRetrievalStrategy = "relevancy_training"
	RetrievalDetailsDocumentRetrievalStrategyContinuousLearning RetrievalDetailsDocumentRetrievalStrategy = "continuous_relevancy_training"
)

func (r RetrievalDetailsDocumentRetrievalStrategy) IsKnown() bool {
	switch r {
	case RetrievalDetailsDocumentRetrievalStrategyUntrained, RetrievalDetailsDocumentRetrievalStrategyRelevancyTraining,
		RetrievalDetailsDocumentRetrievalStrategyContinuousLearning:
		return true
	}
	return false
}

type QuerySuggestedRefinement struct {
	Text string                       `json:"text"`
	JSON querySuggestedRefinementJSON `json:"-"`
}

// querySuggestedRefinementJSON contains the JSON metadata for the struct
// [QuerySuggestedRefinement]
type querySuggestedRefinementJSON struct {
	Text        apijson.Field
	raw         string
	ExtraFields map[string]apijson.Field
}

func (r *QuerySuggestedRefinement) UnmarshalJSON(data []byte) (err error) {
	return apijson.UnmarshalRoot(data, r)
}

func (r querySuggestedRefinementJSON) RawJSON() string {
	return r.raw
}
