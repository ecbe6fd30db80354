package orders

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

type orderEmrClient struct {
	BaseUrl string
}

func NewOrderEmrClient(baseUrl string) contracts.OrderEmrClient {
	return &orderEmrClient{
		BaseUrl: baseUrl + constvars.EmrPathOrder,
	}
}

func (c *orderEmrClient) FindOrderByUUID(ctx context.Context, orderUUID string) (*emr_dto.ProcedureOrder, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/%s?v=full", c.BaseUrl, orderUUID), nil)
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
			return nil, exceptions.ErrGetEmrResource(err, constvars.ResourceOrder)
		}

		var errorResponse emr_dto.ErrorResponse
		err = json.Unmarshal(bodyBytes, &errorResponse)
		if err != nil {
			return nil, exceptions.ErrGetEmrResource(err, constvars.ResourceOrder)
		}

		emrError := fmt.Errorf(errorResponse.Error.Message)
		return nil, exceptions.ErrGetEmrResource(emrError, constvars.ResourceOrder)
	}

	order := new(emr_dto.ProcedureOrder)
	err = json.NewDecoder(resp.Body).Decode(&order)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceOrder)
	}

	return order, nil
}
