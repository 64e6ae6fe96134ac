package hcl

// fileRoot is the top-level structure of a project file.
type fileRoot struct {
	RootDebate *int           `hcl:"root_debate,optional"`
	Source     *sourceBlock   `hcl:"source,block"`
	Output     *outputBlock   `hcl:"output,block"`
	Graph      *graphBlock    `hcl:"graph,block"`
	Storage    []storageBlock `hcl:"storage,block"`
}

type sourceBlock struct {
	Paths []string `hcl:"paths,optional"`
}

type outputBlock struct {
	JSON *string `hcl:"json,optional"`
	HTML *string `hcl:"html,optional"`
	Open *bool   `hcl:"open,optional"`
}

type graphBlock struct {
	ArgumentKeyOffset *int    `hcl:"argument_key_offset,optional"`
	PositionFigure    *string `hcl:"position_figure,optional"`
	ArgumentFigure    *string `hcl:"argument_figure,optional"`
	SuccessVerdict    *int    `hcl:"success_verdict,optional"`
	AllDebates        *int    `hcl:"all_debates,optional"`
}

type storageBlock struct {
	Kind      string  `hcl:"kind,label"`
	Endpoint  *string `hcl:"endpoint,optional"`
	Region    *string `hcl:"region,optional"`
	AccessKey *string `hcl:"access_key,optional"`
	SecretKey *string `hcl:"secret_key,optional"`
	UseSSL    *bool   `hcl:"use_ssl,optional"`
}
