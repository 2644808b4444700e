package domain

import (
	"fmt"
	"strings"
)

// ServiceType enumerates the AWS services the tool can graph.
type ServiceType string

const (
	// ServiceEBS represents block-storage volumes (AWS/EBS).
	ServiceEBS ServiceType = "ebs"
	// ServiceEFS represents network filesystems (AWS/EFS).
	ServiceEFS ServiceType = "efs"
	// ServiceEC2 represents compute instances (AWS/EC2).
	ServiceEC2 ServiceType = "ec2"
)

// ServiceTypes lists all supported services in display order.
var ServiceTypes = []ServiceType{ServiceEBS, ServiceEFS, ServiceEC2}

// ParseServiceType converts a CLI-facing service name into a ServiceType.
// Matching is case-insensitive after trimming whitespace.
func ParseServiceType(s string) (ServiceType, error) {
	switch ServiceType(strings.ToLower(strings.TrimSpace(s))) {
	case ServiceEBS:
		return ServiceEBS, nil
	case ServiceEFS:
		return ServiceEFS, nil
	case ServiceEC2:
		return ServiceEC2, nil
	default:
		return "", fmt.Errorf("unknown service %q (valid: ebs, efs, ec2)", s)
	}
}

// Namespace returns the CloudWatch namespace raw metrics live under.
func (s ServiceType) Namespace() string {
	switch s {
	case ServiceEFS:
		return "AWS/EFS"
	case ServiceEC2:
		return "AWS/EC2"
	default:
		return "AWS/EBS"
	}
}

// DimensionName returns the dimension key that scopes a raw metric to one
// resource of this service.
func (s ServiceType) DimensionName() string {
	switch s {
	case ServiceEFS:
		return "FileSystemId"
	case ServiceEC2:
		return "InstanceId"
	default:
		return "VolumeId"
	}
}
