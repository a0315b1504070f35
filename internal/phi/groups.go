// Package phi holds the fixed taxonomy of DICOM elements most relevant
// for Protected Health Information review. The taxonomy is hand-curated
// data: it never changes across reports and is not derived from scanner
// output.
package phi

import (
	"fmt"

	"github.com/suyashkumar/dicom/pkg/tag"
)

// Ref is one taxonomy entry: a DICOM tag and its keyword as the scanner
// writes it.
type Ref struct {
	Tag     tag.Tag
	Keyword string
}

// Key returns the catalog key for the tag, "GGGG,EEEE" uppercase hex.
func (r Ref) Key() string {
	return fmt.Sprintf("%04X,%04X", r.Tag.Group, r.Tag.Element)
}

// Group is a named, ordered set of taxonomy entries.
type Group struct {
	Name string
	Refs []Ref
}

// Groups returns the review taxonomy in display order. Callers must not
// mutate the returned slices.
func Groups() []Group {
	return taxonomy
}

var taxonomy = []Group{
	{
		Name: "Patient Demographics",
		Refs: []Ref{
			{tag.PatientName, "PatientName"},
			{tag.PatientID, "PatientID"},
			{tag.PatientBirthDate, "PatientBirthDate"},
			{tag.PatientSex, "PatientSex"},
			{tag.PatientAge, "PatientAge"},
			{tag.PatientSize, "PatientSize"},
			{tag.PatientWeight, "PatientWeight"},
		},
	},
	{
		Name: "Institutional / Referring",
		Refs: []Ref{
			{tag.InstitutionName, "InstitutionName"},
			{tag.ReferringPhysicianName, "ReferringPhysicianName"},
			{tag.StationName, "StationName"},
			{tag.AccessionNumber, "AccessionNumber"},
		},
	},
	{
		Name: "Descriptions (may contain PHI)",
		Refs: []Ref{
			{tag.StudyDescription, "StudyDescription"},
			{tag.SeriesDescription, "SeriesDescription"},
			{tag.AdmittingDiagnosesDescription, "AdmittingDiagnosesDescription"},
			{tag.AdditionalPatientHistory, "AdditionalPatientHistory"},
		},
	},
	{
		Name: "De-identification Status",
		Refs: []Ref{
			{tag.PatientIdentityRemoved, "PatientIdentityRemoved"},
			{tag.DeidentificationMethod, "DeidentificationMethod"},
		},
	},
	{
		Name: "UIDs",
		Refs: []Ref{
			{tag.SOPInstanceUID, "SOPInstanceUID"},
			{tag.StudyInstanceUID, "StudyInstanceUID"},
			{tag.SeriesInstanceUID, "SeriesInstanceUID"},
			{tag.FrameOfReferenceUID, "FrameOfReferenceUID"},
			{tag.MediaStorageSOPInstanceUID, "MediaStorageSOPInstanceUID"},
			{tag.InstanceCreatorUID, "InstanceCreatorUID"},
		},
	},
	{
		Name: "Equipment / Protocol",
		Refs: []Ref{
			{tag.Manufacturer, "Manufacturer"},
			{tag.ManufacturerModelName, "ManufacturerModelName"},
			{tag.DeviceSerialNumber, "DeviceSerialNumber"},
			{tag.SoftwareVersions, "SoftwareVersions"},
			{tag.ProtocolName, "ProtocolName"},
			{tag.SourceApplicationEntityTitle, "SourceApplicationEntityTitle"},
			{tag.PerformedStationAETitle, "PerformedStationAETitle"},
		},
	},
	{
		Name: "Procedure Info",
		Refs: []Ref{
			{tag.StudyID, "StudyID"},
			{tag.RequestedProcedureDescription, "RequestedProcedureDescription"},
			{tag.PerformedProcedureStepDescription, "PerformedProcedureStepDescription"},
			{tag.ImageComments, "ImageComments"},
			{tag.PregnancyStatus, "PregnancyStatus"},
		},
	},
}

// ModalityKey is the catalog key the aggregation layer reads the
// dataset's modalities from.
var ModalityKey = Ref{tag.Modality, "Modality"}.Key()
