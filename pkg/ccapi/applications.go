package ccapi

// Application represents a v2 application of an organisation.
type Application struct {
	ID             string                `json:"id"             yaml:"id"`
	Name           string                `json:"name"           yaml:"name"`
	Description    string                `json:"description"    yaml:"description"`
	Zone           string                `json:"zone"           yaml:"zone"`
	Instance       ApplicationInstance   `json:"instance"       yaml:"instance"`
	Deployment     ApplicationDeployment `json:"deployment"     yaml:"deployment"`
	Vhosts         []Vhost               `json:"vhosts"         yaml:"vhosts"`
	CreationDate   int64                 `json:"creationDate"   yaml:"creationDate"`
	State          string                `json:"state"          yaml:"state"`
	CommitID       *string               `json:"commitId"       yaml:"commitId"`
	Branch         string                `json:"branch"         yaml:"branch"`
	Archived       bool                  `json:"archived"       yaml:"archived"`
	StickySessions bool                  `json:"stickySessions" yaml:"stickySessions"`
	Homogeneous    bool                  `json:"homogeneous"    yaml:"homogeneous"`
	CancelOnPush   bool                  `json:"cancelOnPush"   yaml:"cancelOnPush"`
	SeparateBuild  bool                  `json:"separateBuild"  yaml:"separateBuild"`
}

// ApplicationInstance is the scaling block of an application.
type ApplicationInstance struct {
	Type                string `json:"type"                yaml:"type"`
	Version             string `json:"version"             yaml:"version"`
	MinInstances        int    `json:"minInstances"        yaml:"minInstances"`
	MaxInstances        int    `json:"maxInstances"        yaml:"maxInstances"`
	MaxAllowedInstances int    `json:"maxAllowedInstances" yaml:"maxAllowedInstances"`
	MinFlavor           Flavor `json:"minFlavor"           yaml:"minFlavor"`
	MaxFlavor           Flavor `json:"maxFlavor"           yaml:"maxFlavor"`
}

// ApplicationDeployment is the deployment block of an application.
type ApplicationDeployment struct {
	Shutdownable bool   `json:"shutdownable" yaml:"shutdownable"`
	Type         string `json:"type"         yaml:"type"`
	RepoState    string `json:"repoState"    yaml:"repoState"`
	HTTPURL      string `json:"httpUrl"      yaml:"httpUrl"`
}

// Flavor describes an instance size.
type Flavor struct {
	Name         string  `json:"name"         yaml:"name"`
	Mem          int     `json:"mem"          yaml:"mem"`
	CPUs         int     `json:"cpus"         yaml:"cpus"`
	GPUs         int     `json:"gpus"         yaml:"gpus"`
	Price        float64 `json:"price"        yaml:"price"`
	Available    bool    `json:"available"    yaml:"available"`
	Microservice bool    `json:"microservice" yaml:"microservice"`
	PriceID      string  `json:"price_id"     yaml:"price_id"`
}

// Vhost is a domain name bound to an application.
type Vhost struct {
	Fqdn string `json:"fqdn" yaml:"fqdn"`
}

// AppInstance is a running (or recently stopped) instance of an application.
type AppInstance struct {
	ID             string `json:"id"             yaml:"id"`
	AppID          string `json:"appId"          yaml:"appId"`
	State          string `json:"state"          yaml:"state"`
	Flavor         Flavor `json:"flavor"         yaml:"flavor"`
	Commit         string `json:"commit"         yaml:"commit"`
	DeployNumber   int    `json:"deployNumber"   yaml:"deployNumber"`
	InstanceNumber int    `json:"instanceNumber" yaml:"instanceNumber"`
	CreationDate   int64  `json:"creationDate"   yaml:"creationDate"`
}

// ApplicationCreateOptions is the payload for creating or updating an
// application.
type ApplicationCreateOptions struct {
	Name            string `json:"name"                  yaml:"name"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`
	Zone            string `json:"zone"                  yaml:"zone"`
	InstanceType    string `json:"instanceType"          yaml:"instanceType"`
	InstanceVersion string `json:"instanceVersion"       yaml:"instanceVersion"`
	MinInstances    int    `json:"minInstances"          yaml:"minInstances"`
	MaxInstances    int    `json:"maxInstances"          yaml:"maxInstances"`
	MinFlavor       string `json:"minFlavor"             yaml:"minFlavor"`
	MaxFlavor       string `json:"maxFlavor"             yaml:"maxFlavor"`
	CancelOnPush    bool   `json:"cancelOnPush"          yaml:"cancelOnPush"`
	SeparateBuild   bool   `json:"separateBuild"         yaml:"separateBuild"`
}
