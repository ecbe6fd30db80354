package practitioners

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"prosedur-service/internal/app/contracts"
	"prosedur-service/internal/pkg/constvars"
	"prosedur-service/internal/pkg/emr_dto"
	"prosedur-service/internal/pkg/exceptions"
)

type providerEmrClient struct {
	BaseUrl string
}

func NewProviderEmrClient(baseUrl string) contracts.ProviderEmrClient {
	return &providerEmrClient{
		BaseUrl: baseUrl + constvars.EmrPathProvider,
	}
}

func (c *providerEmrClient) ListProviders(ctx context.Context) ([]emr_dto.Provider, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s?v=default", c.BaseUrl), nil)
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
			return nil, exceptions.ErrGetEmrResource(err, constvars.ResourceProvider)
		}

		var errorResponse emr_dto.ErrorResponse
		err = json.Unmarshal(bodyBytes, &errorResponse)
		if err != nil {
			return nil, exceptions.ErrGetEmrResource(err, constvars.ResourceProvider)
		}

		emrError := fmt.Errorf(errorResponse.Error.Message)
		return nil, exceptions.ErrGetEmrResource(emrError, constvars.ResourceProvider)
	}

	listResponse := new(emr_dto.ProviderListResponse)
	err = json.NewDecoder(resp.Body).Decode(&listResponse)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceProvider)
	}

	return listResponse.Results, nil
}
