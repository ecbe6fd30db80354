package procedures

import (
	"bytes"
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

type procedureEmrClient struct {
	BaseUrl string
}

func NewProcedureEmrClient(baseUrl string) contracts.ProcedureEmrClient {
	return &procedureEmrClient{
		BaseUrl: baseUrl + constvars.EmrPathProcedure,
	}
}

// CreateProcedure posts the assembled payload. Only a 201 from the EMR
// counts as a successful save.
func (c *procedureEmrClient) CreateProcedure(ctx context.Context, payload *emr_dto.ProcedurePayload) error {
	requestJSON, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, c.BaseUrl, bytes.NewBuffer(requestJSON))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusCreated {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return exceptions.ErrCreateEmrResource(err, constvars.ResourceProcedure)
		}

		var errorResponse emr_dto.ErrorResponse
		err = json.Unmarshal(bodyBytes, &errorResponse)
		if err != nil {
			return exceptions.ErrCreateEmrResource(err, constvars.ResourceProcedure)
		}

		emrError := fmt.Errorf(errorResponse.Error.Message)
		return exceptions.ErrCreateEmrResource(emrError, constvars.ResourceProcedure)
	}

	return nil
}
