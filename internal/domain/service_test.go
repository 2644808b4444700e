package domain

import "testing"

func TestParseServiceType(t *testing.T) {
	tests := []struct {
		in      string
		want    ServiceType
		wantErr bool
	}{
		{"ebs", ServiceEBS, false},
		{"efs", ServiceEFS, false},
		{"ec2", ServiceEC2, false},
		{" EBS ", ServiceEBS, false},
		{"s3", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseServiceType(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestServiceTypeNamespaceAndDimension(t *testing.T) {
	tests := []struct {
		service   ServiceType
		namespace string
		dimension string
	}{
		{ServiceEBS, "AWS/EBS", "VolumeId"},
		{ServiceEFS, "AWS/EFS", "FileSystemId"},
		{ServiceEC2, "AWS/EC2", "InstanceId"},
	}
	for _, tt := range tests {
		if got := tt.service.Namespace(); got != tt.namespace {
			t.Errorf("%s.Namespace() = %q, want %q", tt.service, got, tt.namespace)
		}
		if got := tt.service.DimensionName(); got != tt.dimension {
			t.Errorf("%s.DimensionName() = %q, want %q", tt.service, got, tt.dimension)
		}
	}
}
