package cli

import "testing"

func TestAdminCmd_Subcommands(t *testing.T) {
	cmd := AdminCmd()

	for _, name := range []string{"pending", "approved", "approve", "reject", "delete", "category"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub == cmd {
			t.Errorf("expected subcommand %q", name)
		}
	}

	if cmd.PersistentFlags().Lookup("password") == nil {
		t.Error("expected persistent --password flag")
	}
}

func TestAdminCategoryCmd_Subcommands(t *testing.T) {
	cmd := AdminCmd()
	for _, path := range [][]string{{"category", "add"}, {"category", "delete"}} {
		sub, _, err := cmd.Find(path)
		if err != nil || sub.Name() != path[1] {
			t.Errorf("expected subcommand %v", path)
		}
	}
}

func TestSubmitCmd_Flags(t *testing.T) {
	cmd := SubmitCmd()
	for _, name := range []string{"title", "description", "use-case", "by"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag", name)
		}
	}
}

func TestInitCmd_SeedFlag(t *testing.T) {
	if InitCmd().Flags().Lookup("seed") == nil {
		t.Error("expected --seed flag")
	}
}
