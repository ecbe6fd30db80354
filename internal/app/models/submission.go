package models

import "prosedur-service/internal/pkg/emr_dto"

// SubmissionRecord is the audit trail entry written for every completion
// attempt, successful or not.
type SubmissionRecord struct {
	ID            string                   `json:"id,omitempty" bson:"_id,omitempty"`
	OrderUUID     string                   `json:"orderUuid" bson:"orderUuid"`
	PatientUUID   string                   `json:"patientUuid" bson:"patientUuid"`
	ProviderUUID  string                   `json:"providerUuid" bson:"providerUuid"`
	LocationUUID  string                   `json:"locationUuid" bson:"locationUuid"`
	State         string                   `json:"state" bson:"state"`
	FailureReason string                   `json:"failureReason,omitempty" bson:"failureReason,omitempty"`
	Payload       emr_dto.ProcedurePayload `json:"payload" bson:"payload"`
	TimeModel     `bson:",inline"`
}
