package tags

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
)

// tagPriority matches the priority the CDK's own Tag aspect uses, so a later
// identical application overwrites cleanly instead of conflicting.
const tagPriority = 100

// Aspect applies a tag set to every taggable node of a construct tree.
//
// Register it once against the tree root with awscdk.Aspects_Of. Nodes that
// carry no tag manager are skipped silently; application is idempotent and
// independent of traversal order.
type Aspect struct {
	set Set
}

// NewAspect returns an aspect applying the given tag set.
func NewAspect(set Set) *Aspect {
	return &Aspect{set: set.Copy()}
}

// Visit implements awscdk.IAspect.
func (a *Aspect) Visit(node constructs.IConstruct) {
	switch t := node.(type) {
	case awscdk.ITaggable:
		a.apply(t.Tags())
	case awscdk.ITaggableV2:
		a.apply(t.CdkTagManager())
	}
}

func (a *Aspect) apply(tm awscdk.TagManager) {
	for k, v := range a.set {
		tm.SetTag(jsii.String(k), jsii.String(v), jsii.Number(tagPriority), jsii.Bool(true))
	}
}
