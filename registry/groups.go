package registry

import (
	"slices"
	"sync"

	"student-directory/models"
)

type GroupRegistry struct {
	mu       sync.Mutex
	groups   []models.Group
	lastID   int
	students *StudentRegistry
}

func NewGroupRegistry(students *StudentRegistry) *GroupRegistry {
	return &GroupRegistry{
		groups:   []models.Group{},
		students: students,
	}
}

// Create resolves every member name to a student id and stores a new
// group. Students created while resolving are kept even when the group
// turns out to be a duplicate.
func (r *GroupRegistry) Create(groupName string, memberNames []string) (models.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	memberIDs := make([]int, 0, len(memberNames))
	for _, name := range memberNames {
		memberIDs = append(memberIDs, r.students.Resolve(name))
	}

	if r.exists(groupName, memberIDs) {
		return models.Group{}, ErrDuplicateGroup
	}

	r.lastID++
	group := models.Group{
		ID:        r.lastID,
		GroupName: groupName,
		Members:   memberIDs,
	}
	r.groups = append(r.groups, group)
	return cloneGroup(group), nil
}

// exists reports whether a group with the same name and an equally long
// member list already holds only ids found in memberIDs. Counts of
// repeated ids are not compared.
func (r *GroupRegistry) exists(groupName string, memberIDs []int) bool {
	for _, g := range r.groups {
		if g.GroupName != groupName || len(g.Members) != len(memberIDs) {
			continue
		}
		subset := true
		for _, m := range g.Members {
			if !slices.Contains(memberIDs, m) {
				subset = false
				break
			}
		}
		if subset {
			return true
		}
	}
	return false
}

func (r *GroupRegistry) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return ErrGroupNotFound
	}
	r.groups = slices.Delete(r.groups, idx, idx+1)
	return nil
}

// GetExpanded returns the group with its member ids replaced by student
// records, position for position.
func (r *GroupRegistry) GetExpanded(id int) (models.ExpandedGroup, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx == -1 {
		return models.ExpandedGroup{}, ErrGroupNotFound
	}
	group := r.groups[idx]

	members := make([]*models.Student, len(group.Members))
	for i, memberID := range group.Members {
		if s, ok := r.students.Find(memberID); ok {
			members[i] = &s
		}
	}

	return models.ExpandedGroup{
		ID:        group.ID,
		GroupName: group.GroupName,
		Members:   members,
	}, nil
}

func (r *GroupRegistry) List() []models.Group {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Group, len(r.groups))
	for i, g := range r.groups {
		out[i] = cloneGroup(g)
	}
	return out
}

func (r *GroupRegistry) indexOf(id int) int {
	return slices.IndexFunc(r.groups, func(g models.Group) bool {
		return g.ID == id
	})
}

func cloneGroup(g models.Group) models.Group {
	g.Members = slices.Clone(g.Members)
	return g
}
