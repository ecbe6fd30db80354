package conditions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"prosedur-service/internal/app/contracts"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/emr_dto"
	"prosedur-service/internal/pkg/exceptions"
)

type conditionEmrClient struct {
	BaseUrl string
}

func NewConditionEmrClient(baseUrl string) contracts.ConditionEmrClient {
	return &conditionEmrClient{
		BaseUrl: baseUrl + constvars.EmrPathConcept,
	}
}

func (c *conditionEmrClient) SearchConditionConcepts(ctx context.Context, query string) ([]emr_dto.ConditionCandidate, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("conceptClasses", "Diagnosis")

	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s?%s", c.BaseUrl, params.Encode()), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, exceptions.ErrSearchEmrResource(err, constvars.ResourceConcept)
		}

		var errorResponse emr_dto.ErrorResponse
		err = json.Unmarshal(bodyBytes, &errorResponse)
		if err != nil {
			return nil, exceptions.ErrSearchEmrResource(err, constvars.ResourceConcept)
		}

		emrError := fmt.Errorf(errorResponse.Error.Message)
		return nil, exceptions.ErrSearchEmrResource(emrError, constvars.ResourceConcept)
	}

	searchResponse := new(emr_dto.ConceptSearchResponse)
	err = json.NewDecoder(resp.Body).Decode(&searchResponse)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceConcept)
	}

	return searchResponse.Results, nil
}
