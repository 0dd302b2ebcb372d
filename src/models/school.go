package models

// School โรงเรียน
type School struct {
	SchoolID   string `json:"SchoolID" bson:"schoolId"`
	SchoolName string `json:"SchoolName" bson:"schoolName"`
	Cluster    string `json:"Cluster" bson:"cluster"`
}

// Cluster กลุ่มเครือข่ายโรงเรียน
type Cluster struct {
	ClusterID   string `json:"ClusterID" bson:"clusterId"`
	ClusterName string `json:"ClusterName" bson:"clusterName"`
}
