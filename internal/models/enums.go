package models

// Grade is the seniority grade of an anaesthesiologist
type Grade string

const (
	GradeMO              Grade = "MO"
	GradeRegistrar       Grade = "REGISTRAR"
	GradeSeniorRegistrar Grade = "SENIOR_REGISTRAR"
	GradeConsultant      Grade = "CONSULTANT"
)

// Grades lists every grade from least to most senior
var Grades = []Grade{GradeMO, GradeRegistrar, GradeSeniorRegistrar, GradeConsultant}

var gradeLabels = map[Grade]string{
	GradeMO:              "Medical Officer",
	GradeRegistrar:       "Registrar",
	GradeSeniorRegistrar: "Senior Registrar",
	GradeConsultant:      "Consultant",
}

// Valid reports whether g is one of the known grades
func (g Grade) Valid() bool {
	_, ok := gradeLabels[g]
	return ok
}

// Rank returns the seniority of the grade (MO = 1 ... CONSULTANT = 4), or 0 if unknown
func (g Grade) Rank() int {
	for i, grade := range Grades {
		if grade == g {
			return i + 1
		}
	}
	return 0
}

func (g Grade) Label() string {
	if label, ok := gradeLabels[g]; ok {
		return label
	}
	return string(g)
}

// Gender of a person
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// HospitalType is the facility category of a hospital
type HospitalType string

const (
	HospitalTypeBase                         HospitalType = "BASE_HOSPITAL"
	HospitalTypeBoardManaged                 HospitalType = "BOARD_MANAGED_HOSPITAL"
	HospitalTypeDistrictGeneral              HospitalType = "DISTRICT_GENERAL_HOSPITAL"
	HospitalTypeDivisional                   HospitalType = "DIVISIONAL_HOSPITAL"
	HospitalTypeGeneral                      HospitalType = "GENERAL_HOSPITAL"
	HospitalTypeMedicalClinic                HospitalType = "MEDICAL_CLINIC"
	HospitalTypeMOHOffice                    HospitalType = "MOH_OFFICE"
	HospitalTypeNational                     HospitalType = "NATIONAL_HOSPITAL"
	HospitalTypeRegionalHealthServicesOffice HospitalType = "REGIONAL_HEALTH_SERVICES_OFFICE"
	HospitalTypeOtherHealthInstitution       HospitalType = "OTHER_HEALTH_INSTITUTION"
	HospitalTypeOther                        HospitalType = "OTHER_HOSPITAL"
	HospitalTypePrimaryMedicalCareUnit       HospitalType = "PRIMARY_MEDICAL_CARE_UNIT"
	HospitalTypeProvincialGeneral            HospitalType = "PROVINCIAL_GENERAL_HOSPITAL"
	HospitalTypeSpecialized                  HospitalType = "SPECIALIZED_HOSPITAL"
	HospitalTypeTeaching                     HospitalType = "TEACHING_HOSPITAL"
)

var hospitalTypeLabels = map[HospitalType]string{
	HospitalTypeBase:                         "Base Hospital",
	HospitalTypeBoardManaged:                 "Board Managed Hospital",
	HospitalTypeDistrictGeneral:              "District General Hospital",
	HospitalTypeDivisional:                   "Divisional Hospital",
	HospitalTypeGeneral:                      "General Hospital",
	HospitalTypeMedicalClinic:                "Medical Clinic",
	HospitalTypeMOHOffice:                    "MOH Office",
	HospitalTypeNational:                     "National Hospital",
	HospitalTypeRegionalHealthServicesOffice: "Regional Health Services Office",
	HospitalTypeOtherHealthInstitution:       "Other Health Institution",
	HospitalTypeOther:                        "Other Hospital",
	HospitalTypePrimaryMedicalCareUnit:       "Primary Medical Care Unit",
	HospitalTypeProvincialGeneral:            "Provincial General Hospital",
	HospitalTypeSpecialized:                  "Specialized Hospital",
	HospitalTypeTeaching:                     "Teaching Hospital",
}

func (t HospitalType) Valid() bool {
	_, ok := hospitalTypeLabels[t]
	return ok
}

func (t HospitalType) Label() string {
	if label, ok := hospitalTypeLabels[t]; ok {
		return label
	}
	return string(t)
}
